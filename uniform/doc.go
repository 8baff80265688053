// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package uniform packs typed values into the flat byte block a shader's
// uniform buffer expects.
//
// A [Layout] is a table of fields, each a byte offset and a byte size,
// addressed by the [Handle] returned when the field was registered. The
// table is built once per shader kind and then reused for every write:
//
//	l := uniform.NewLayout()
//	matrix := l.AppendField(uniform.SizeMat4)   // offset 0
//	aspect := l.AppendField(uniform.SizeVec2)   // offset 64
//	opacity := l.AppendField(uniform.SizeFloat) // offset 72
//
//	buf := make([]byte, l.AlignedSize(16))
//	l.WriteMat4(buf, matrix, uniform.Identity4())
//	l.WriteVec2(buf, aspect, uniform.Vec2{1, 1})
//	l.WriteFloat(buf, opacity, 1)
//
// Fields registered with [Layout.AppendField] are packed back to back. When
// the shader's block needs alignment padding (WGSL and std140 put vec2 on 8
// byte boundaries and vec4, mat4 and array elements on 16 byte boundaries)
// compute the offsets with [Std140] and register them with
// [Layout.AddField].
//
// # Failure policy
//
// Writes never fail. A handle that was never registered, or a destination
// too short to hold the field, makes the write a no-op. A value whose
// natural size differs from the field's size is truncated or zero-filled to
// the field's size and reported at debug level through [Logger]. The order
// and sizes of the registered fields must match the shader's uniform block;
// nothing here can check that.
//
// All multi-byte values are written little-endian, the byte order of every
// GPU the wgpu backends target.
package uniform
