// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniform

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// WriteInt writes a 32-bit signed integer (WGSL i32).
func (l *Layout) WriteInt(dst []byte, h Handle, v int32) {
	var b [SizeInt]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	l.write(dst, h, b[:])
}

// WriteFloat writes a 32-bit float (WGSL f32).
func (l *Layout) WriteFloat(dst []byte, h Handle, v float32) {
	var b [SizeFloat]byte
	putFloats(b[:], v)
	l.write(dst, h, b[:])
}

// WriteVec2 writes x, y.
func (l *Layout) WriteVec2(dst []byte, h Handle, v Vec2) {
	var b [SizeVec2]byte
	putFloats(b[:], v.X, v.Y)
	l.write(dst, h, b[:])
}

// WriteVec3 writes x, y, z.
func (l *Layout) WriteVec3(dst []byte, h Handle, v Vec3) {
	var b [SizeVec3]byte
	putFloats(b[:], v.X, v.Y, v.Z)
	l.write(dst, h, b[:])
}

// WriteVec4 writes x, y, z, w.
func (l *Layout) WriteVec4(dst []byte, h Handle, v Vec4) {
	var b [SizeVec4]byte
	putFloats(b[:], v.X, v.Y, v.Z, v.W)
	l.write(dst, h, b[:])
}

// WriteColor writes the color as normalized R, G, B, A floats.
func (l *Layout) WriteColor(dst []byte, h Handle, c gg.RGBA) {
	l.WriteVec4(dst, h, ColorVec4(c))
}

// WriteMat4 writes the 16 elements of m in column-major order.
func (l *Layout) WriteMat4(dst []byte, h Handle, m Mat4) {
	var b [SizeMat4]byte
	putFloats(b[:], m[:]...)
	l.write(dst, h, b[:])
}

// WriteFloats writes a float array into a fixed-capacity array field.
//
// Exactly the field's size is written. Callers are expected to hand over a
// slice already sized to the field's full capacity with unused slots left
// zero; a shorter slice is zero-filled and a longer one truncated, and
// either is logged at debug level.
func (l *Layout) WriteFloats(dst []byte, h Handle, v []float32) {
	out := l.target(dst, h, len(v)*SizeFloat)
	if out == nil {
		return
	}
	n := min(len(v), len(out)/SizeFloat)
	putFloats(out, v[:n]...)
	clear(out[n*SizeFloat:])
}

// WriteBytes copies raw bytes into the field, with the same size rules as
// the typed writes.
func (l *Layout) WriteBytes(dst []byte, h Handle, data []byte) {
	l.write(dst, h, data)
}

func (l *Layout) write(dst []byte, h Handle, data []byte) {
	out := l.target(dst, h, len(data))
	if out == nil {
		return
	}
	n := copy(out, data)
	clear(out[n:])
}

// target returns the slice of dst covered by the field for h, or nil when
// the write has to be skipped.
func (l *Layout) target(dst []byte, h Handle, natural int) []byte {
	f, ok := l.Field(h)
	if !ok {
		return nil
	}
	end := uint64(f.Offset) + uint64(f.Size)
	if end > uint64(len(dst)) {
		logDebug("uniform: destination too short, write skipped",
			slog.Int("handle", int(h)), slog.Uint64("end", end), slog.Int("len", len(dst)))
		return nil
	}
	if natural != int(f.Size) {
		logDebug("uniform: value size differs from field size",
			slog.Int("handle", int(h)), slog.Int("value", natural), slog.Uint64("field", uint64(f.Size)))
	}
	return dst[f.Offset:end]
}

func logDebug(msg string, attrs ...slog.Attr) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

func putFloats(b []byte, v ...float32) {
	for i, f := range v {
		binary.LittleEndian.PutUint32(b[i*SizeFloat:], math.Float32bits(f))
	}
}
