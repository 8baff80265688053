// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniform

// Natural sizes in bytes of the values the Write methods encode.
const (
	SizeInt   = 4
	SizeFloat = 4
	SizeVec2  = 2 * SizeFloat
	SizeVec3  = 3 * SizeFloat
	SizeVec4  = 4 * SizeFloat
	SizeColor = SizeVec4
	SizeMat4  = 16 * SizeFloat
)

// Handle addresses a field of a Layout. It is the field's position in the
// registration order.
type Handle int

// Field is the byte range one value occupies inside a uniform block.
type Field struct {
	Offset uint32
	Size   uint32
}

// End returns the offset of the first byte after the field.
func (f Field) End() uint32 {
	return f.Offset + f.Size
}

// Layout maps handles to fields and writes values into destination buffers
// at those fields.
//
// A Layout is built once, typically when a shader kind is first used, and
// only read afterwards. Registering fields while another goroutine writes
// through the same Layout is not supported. The write methods never keep a
// reference to the destination buffer.
type Layout struct {
	fields []Field
	// next is the running offset used by AppendField.
	next uint32
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// AppendField registers a field of the given size directly after the
// previously appended one and returns its handle.
//
// The running offset only advances through AppendField; fields placed with
// AddField do not move it.
func (l *Layout) AppendField(size uint32) Handle {
	l.fields = append(l.fields, Field{Offset: l.next, Size: size})
	l.next += size
	return Handle(len(l.fields) - 1)
}

// AddField registers, or replaces, the field for handle h at an explicit
// offset. If h is past the end of the table the table grows and the
// skipped handles hold empty fields. Fields may overlap.
//
// Negative handles are ignored.
func (l *Layout) AddField(h Handle, offset, size uint32) {
	if h < 0 {
		return
	}
	if int(h) >= len(l.fields) {
		grown := make([]Field, int(h)+1)
		copy(grown, l.fields)
		l.fields = grown
	}
	l.fields[h] = Field{Offset: offset, Size: size}
}

// Field returns the field registered for h.
func (l *Layout) Field(h Handle) (Field, bool) {
	if h < 0 || int(h) >= len(l.fields) {
		return Field{}, false
	}
	return l.fields[h], true
}

// Fields returns a copy of the field table in handle order.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// Len returns the number of registered handles, placeholders included.
func (l *Layout) Len() int {
	return len(l.fields)
}

// Size returns the end offset of the furthest field, which is the minimum
// destination length that every field fits into.
func (l *Layout) Size() uint32 {
	var size uint32
	for _, f := range l.fields {
		size = max(size, f.End())
	}
	return size
}

// AlignedSize returns Size rounded up to a multiple of align. Uniform
// buffers are usually allocated at a 16 byte multiple.
func (l *Layout) AlignedSize(align uint32) uint32 {
	return AlignUp(l.Size(), align)
}

// AlignUp rounds v up to the next multiple of align. An align of zero
// returns v unchanged.
func AlignUp(v, align uint32) uint32 {
	if align == 0 {
		return v
	}
	return (v + align - 1) / align * align
}
