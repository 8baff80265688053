// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniform

// Alignments of WGSL uniform address space members. vec3 shares vec4's
// alignment; array elements in a uniform block are rounded to 16 bytes.
const (
	AlignScalar = 4
	AlignVec2   = 8
	AlignVec3   = 16
	AlignVec4   = 16
	AlignMat4   = 16
	AlignArray  = 16
)

// Std140 walks a uniform block member by member and hands out offsets that
// respect WGSL / std140 alignment. The zero value starts at offset 0.
//
// It only computes offsets; the results are registered with
// Layout.AddField, directly or through Std140.Append.
type Std140 struct {
	offset uint32
}

// Std140At returns a walker that continues after the first n bytes, for
// blocks whose head was registered with AppendField.
func Std140At(n uint32) *Std140 {
	return &Std140{offset: n}
}

// Next returns the field for the next member with the given alignment and
// size and advances past it.
func (s *Std140) Next(align, size uint32) Field {
	off := AlignUp(s.offset, align)
	s.offset = off + size
	return Field{Offset: off, Size: size}
}

// Append places the next member in l under a fresh handle.
func (s *Std140) Append(l *Layout, align, size uint32) Handle {
	f := s.Next(align, size)
	h := Handle(l.Len())
	l.AddField(h, f.Offset, f.Size)
	return h
}

// Offset returns the first unused byte.
func (s *Std140) Offset() uint32 {
	return s.offset
}

// Size returns the size of the whole block, rounded up to the 16 byte
// alignment a struct in the uniform address space has.
func (s *Std140) Size() uint32 {
	return AlignUp(s.offset, AlignVec4)
}

// ArraySize returns the byte size of a uniform array of count elements of
// elemSize bytes each, with the element stride rounded up to 16.
func ArraySize(elemSize, count uint32) uint32 {
	return AlignUp(elemSize, AlignArray) * count
}
