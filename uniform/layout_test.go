// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniform

import "testing"

func TestAppendFieldOffsets(t *testing.T) {
	l := NewLayout()
	matrix := l.AppendField(SizeMat4)
	aspect := l.AppendField(SizeVec2)
	opacity := l.AppendField(SizeFloat)

	tests := []struct {
		name   string
		h      Handle
		handle Handle
		offset uint32
		size   uint32
	}{
		{"matrix", matrix, 0, 0, 64},
		{"aspect", aspect, 1, 64, 8},
		{"opacity", opacity, 2, 72, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.h != tt.handle {
				t.Errorf("handle = %d, want %d", tt.h, tt.handle)
			}
			f, ok := l.Field(tt.h)
			if !ok {
				t.Fatalf("Field(%d) not registered", tt.h)
			}
			if f.Offset != tt.offset || f.Size != tt.size {
				t.Errorf("Field(%d) = %+v, want offset %d size %d", tt.h, f, tt.offset, tt.size)
			}
		})
	}

	if got := l.Size(); got != 76 {
		t.Errorf("Size() = %d, want 76", got)
	}
	if got := l.AlignedSize(16); got != 80 {
		t.Errorf("AlignedSize(16) = %d, want 80", got)
	}
}

func TestAddFieldGrowsWithPlaceholders(t *testing.T) {
	l := NewLayout()
	l.AddField(3, 32, 16)

	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	for h := Handle(0); h < 3; h++ {
		f, ok := l.Field(h)
		if !ok {
			t.Errorf("placeholder %d missing", h)
		}
		if f != (Field{}) {
			t.Errorf("placeholder %d = %+v, want empty field", h, f)
		}
	}
	if f, _ := l.Field(3); f != (Field{Offset: 32, Size: 16}) {
		t.Errorf("Field(3) = %+v", f)
	}
}

func TestAddFieldOverwrites(t *testing.T) {
	l := NewLayout()
	h := l.AppendField(SizeFloat)
	l.AddField(h, 12, SizeFloat)

	if f, _ := l.Field(h); f.Offset != 12 {
		t.Errorf("offset after re-registration = %d, want 12", f.Offset)
	}
	// AddField does not move the running offset.
	next := l.AppendField(SizeFloat)
	if f, _ := l.Field(next); f.Offset != 4 {
		t.Errorf("appended offset = %d, want 4", f.Offset)
	}
}

func TestAddFieldAllowsOverlap(t *testing.T) {
	l := NewLayout()
	l.AddField(0, 0, SizeVec4)
	l.AddField(1, 8, SizeFloat)

	buf := make([]byte, SizeVec4)
	l.WriteVec4(buf, 0, Vec4{1, 2, 3, 4})
	l.WriteFloat(buf, 1, 9)

	if got := readFloat(buf, 8); got != 9 {
		t.Errorf("overlapping write = %v, want 9", got)
	}
	if got := readFloat(buf, 4); got != 2 {
		t.Errorf("untouched component = %v, want 2", got)
	}
}

func TestAddFieldNegativeHandle(t *testing.T) {
	l := NewLayout()
	l.AddField(-1, 0, 4)
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	l := NewLayout()
	l.AppendField(SizeFloat)
	fields := l.Fields()
	fields[0].Offset = 99
	if f, _ := l.Field(0); f.Offset != 0 {
		t.Error("Fields() exposed the internal table")
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		v, align, want uint32
	}{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{76, 16, 80},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := AlignUp(tt.v, tt.align); got != tt.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", tt.v, tt.align, got, tt.want)
		}
	}
}
