// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"cmp"
	"math"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/charts/uniform"
)

// Bar is the material of one bar of a bar chart.
type Bar struct {
	Aspect          uniform.Vec2
	Radius          float32
	BackgroundColor gg.RGBA

	// Dirty forces the next UpdateUniformData to rewrite the fields.
	Dirty bool
}

// NewBar returns a square, unrounded bar with a transparent background.
func NewBar() *Bar {
	return &Bar{Aspect: uniform.Vec2{X: 1, Y: 1}, Dirty: true}
}

func (b *Bar) Kind() Kind { return KindBar }

// Compare orders bars for batching. It returns 0 when both bars can share
// uniform data: equal aspect and background and nearly equal radius.
func (b *Bar) Compare(other *Bar) int {
	if c := cmp.Compare(b.Aspect.X, other.Aspect.X); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Aspect.Y, other.Aspect.Y); c != 0 {
		return c
	}
	if !fuzzyEqual32(b.Radius, other.Radius) {
		return cmp.Compare(b.Radius, other.Radius)
	}
	if c := compareColor(b.BackgroundColor, other.BackgroundColor); c != 0 {
		return c
	}
	return 0
}

func (b *Bar) UpdateUniformData(state RenderState, dst []byte, old Material) bool {
	w := BarLayout()
	changed := writeState(w.Layout, w.Matrix, w.Opacity, state, dst)

	if old != Material(b) || b.Dirty {
		w.WriteVec2(dst, w.Aspect, b.Aspect)
		w.WriteFloat(dst, w.Radius, b.Radius)
		w.WriteColor(dst, w.BackgroundColor, b.BackgroundColor)
		b.Dirty = false
		changed = true
	}
	return changed
}

// BarWriter is the uniform block of the bar shader:
//
//	struct BarUniforms {
//	    matrix: mat4x4<f32>,           // 0
//	    aspect: vec2<f32>,             // 64
//	    opacity: f32,                  // 72
//	    radius: f32,                   // 76
//	    background_color: vec4<f32>,   // 80
//	}
type BarWriter struct {
	*uniform.Layout
	Matrix          uniform.Handle
	Aspect          uniform.Handle
	Opacity         uniform.Handle
	Radius          uniform.Handle
	BackgroundColor uniform.Handle
}

// The members happen to be naturally aligned, so plain appending matches
// the WGSL layout.
var barWriter = sync.OnceValue(func() *BarWriter {
	w := &BarWriter{Layout: uniform.NewLayout()}
	w.Matrix = w.AppendField(uniform.SizeMat4)
	w.Aspect = w.AppendField(uniform.SizeVec2)
	w.Opacity = w.AppendField(uniform.SizeFloat)
	w.Radius = w.AppendField(uniform.SizeFloat)
	w.BackgroundColor = w.AppendField(uniform.SizeColor)
	return w
})

// BarLayout returns the process-wide bar writer, building it on first use.
func BarLayout() *BarWriter {
	return barWriter()
}

func fuzzyEqual32(a, b float32) bool {
	if a == b {
		return true
	}
	fa, fb := float64(a), float64(b)
	return math.Abs(fa-fb) <= 1e-5*math.Max(1, math.Max(math.Abs(fa), math.Abs(fb)))
}

func compareColor(a, b gg.RGBA) int {
	if c := cmp.Compare(a.R, b.R); c != 0 {
		return c
	}
	if c := cmp.Compare(a.G, b.G); c != 0 {
		return c
	}
	if c := cmp.Compare(a.B, b.B); c != 0 {
		return c
	}
	return cmp.Compare(a.A, b.A)
}
