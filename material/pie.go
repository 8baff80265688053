// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"math"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/uniform"
)

// MaxSegments is the capacity of the segment and color arrays of the pie
// shader. Segments past it are not drawn.
const MaxSegments = 100

// Pie is the material of a pie or donut chart.
type Pie struct {
	Aspect          uniform.Vec2
	InnerRadius     float32
	OuterRadius     float32
	FromAngle       float32
	ToAngle         float32
	SmoothEnds      bool
	BackgroundColor gg.RGBA

	// Segments holds one (start, end) angle pair per slice, in radians.
	Segments []uniform.Vec2
	// Colors holds the color of each slice. Missing colors are transparent.
	Colors []gg.RGBA

	// Dirty forces the next UpdateUniformData to rewrite the fields.
	Dirty bool
}

// NewPie returns a full circle pie with no segments.
func NewPie() *Pie {
	return &Pie{
		Aspect:      uniform.Vec2{X: 1, Y: 1},
		OuterRadius: 1,
		ToAngle:     2 * math.Pi,
		Dirty:       true,
	}
}

func (p *Pie) Kind() Kind { return KindPie }

// SetValues replaces the segments with slices proportional to values
// across the pie's angle span.
func (p *Pie) SetValues(values []float64) {
	p.Segments = charts.PieSegments(values, float64(p.FromAngle), float64(p.ToAngle))
	p.Dirty = true
}

func (p *Pie) UpdateUniformData(state RenderState, dst []byte, old Material) bool {
	w := PieLayout()
	changed := writeState(w.Layout, w.Matrix, w.Opacity, state, dst)

	if old != Material(p) || p.Dirty {
		w.WriteVec2(dst, w.Aspect, p.Aspect)
		w.WriteFloat(dst, w.InnerRadius, p.InnerRadius)
		w.WriteFloat(dst, w.OuterRadius, p.OuterRadius)
		w.WriteFloat(dst, w.FromAngle, p.FromAngle)
		w.WriteFloat(dst, w.ToAngle, p.ToAngle)
		w.WriteInt(dst, w.SmoothEnds, boolInt(p.SmoothEnds))
		w.WriteColor(dst, w.BackgroundColor, p.BackgroundColor)

		count := len(p.Segments)
		if count > MaxSegments {
			charts.Logger().Debug("material: pie segments truncated",
				"segments", count, "max", MaxSegments)
			count = MaxSegments
		}
		w.WriteInt(dst, w.SegmentCount, int32(count))
		w.WriteFloats(dst, w.Segments, segmentData(p.Segments))
		w.WriteFloats(dst, w.Colors, colorData(p.Colors, count))

		p.Dirty = false
		changed = true
	}
	return changed
}

// segmentData packs segments into a scratch array sized to the full
// capacity of the segments field. Unused slots stay zero.
func segmentData(segments []uniform.Vec2) []float32 {
	out := make([]float32, 2*MaxSegments)
	for i, s := range segments[:min(len(segments), MaxSegments)] {
		out[2*i] = s.X
		out[2*i+1] = s.Y
	}
	return out
}

// colorData packs the first n colors into a scratch array sized to the
// full capacity of the colors field.
func colorData(colors []gg.RGBA, n int) []float32 {
	out := make([]float32, 4*MaxSegments)
	for i, c := range colors[:min(len(colors), n)] {
		v := uniform.ColorVec4(c)
		out[4*i] = v.X
		out[4*i+1] = v.Y
		out[4*i+2] = v.Z
		out[4*i+3] = v.W
	}
	return out
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// PieWriter is the uniform block of the pie shader:
//
//	struct PieUniforms {
//	    matrix: mat4x4<f32>,                  // 0
//	    aspect: vec2<f32>,                    // 64
//	    opacity: f32,                         // 72
//	    inner_radius: f32,                    // 76
//	    outer_radius: f32,                    // 80
//	    from_angle: f32,                      // 84
//	    to_angle: f32,                        // 88
//	    smooth_ends: i32,                     // 92
//	    background_color: vec4<f32>,          // 96
//	    segment_count: i32,                   // 112
//	    segments: array<vec4<f32>, 50>,       // 128, two segments per element
//	    colors: array<vec4<f32>, 100>,        // 928
//	}
type PieWriter struct {
	*uniform.Layout
	Matrix          uniform.Handle
	Aspect          uniform.Handle
	Opacity         uniform.Handle
	InnerRadius     uniform.Handle
	OuterRadius     uniform.Handle
	FromAngle       uniform.Handle
	ToAngle         uniform.Handle
	SmoothEnds      uniform.Handle
	BackgroundColor uniform.Handle
	SegmentCount    uniform.Handle
	Segments        uniform.Handle
	Colors          uniform.Handle
}

// The head of the block packs naturally. The arrays need 16 byte
// alignment, so they are placed explicitly after it.
var pieWriter = sync.OnceValue(func() *PieWriter {
	w := &PieWriter{Layout: uniform.NewLayout()}
	w.Matrix = w.AppendField(uniform.SizeMat4)
	w.Aspect = w.AppendField(uniform.SizeVec2)
	w.Opacity = w.AppendField(uniform.SizeFloat)
	w.InnerRadius = w.AppendField(uniform.SizeFloat)
	w.OuterRadius = w.AppendField(uniform.SizeFloat)
	w.FromAngle = w.AppendField(uniform.SizeFloat)
	w.ToAngle = w.AppendField(uniform.SizeFloat)
	w.SmoothEnds = w.AppendField(uniform.SizeInt)
	w.BackgroundColor = w.AppendField(uniform.SizeColor)
	w.SegmentCount = w.AppendField(uniform.SizeInt)

	arrays := uniform.Std140At(w.Size())
	w.Segments = arrays.Append(w.Layout, uniform.AlignArray, uniform.ArraySize(uniform.SizeVec4, MaxSegments/2))
	w.Colors = arrays.Append(w.Layout, uniform.AlignArray, uniform.ArraySize(uniform.SizeVec4, MaxSegments))
	return w
})

// PieLayout returns the process-wide pie writer, building it on first use.
func PieLayout() *PieWriter {
	return pieWriter()
}
