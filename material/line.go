// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/internal/geometry"
	"github.com/gogpu/charts/uniform"
)

// MaxPoints is the number of points one line material can hold. Longer
// series are split into several materials by LineSegments.
const MaxPoints = 100

// Line is the material of one segment of a line chart.
type Line struct {
	LineColor gg.RGBA
	FillColor gg.RGBA
	LineWidth float32
	Aspect    uniform.Vec2

	// Bounds is the (start, end) of the value axis the points are
	// normalized against.
	Bounds uniform.Vec2

	// Points holds (x, value) pairs with x in [0, 1] across the segment.
	Points []uniform.Vec2

	// Dirty forces the next UpdateUniformData to rewrite the fields.
	Dirty bool
}

// NewLine returns an opaque black line one unit wide with no fill.
func NewLine() *Line {
	return &Line{
		LineColor: gg.Black,
		LineWidth: 1,
		Aspect:    uniform.Vec2{X: 1, Y: 1},
		Bounds:    uniform.Vec2{X: 0, Y: 1},
		Dirty:     true,
	}
}

func (l *Line) Kind() Kind { return KindLine }

// LineSegments splits values into materials of at most MaxPoints points.
// Every material copies the colors, width and aspect of style and takes
// its bounds from the Y axis of r.
func LineSegments(values []float64, r charts.ComputedRange, style *Line) []*Line {
	chunks := geometry.SplitSegments(values, MaxPoints)
	out := make([]*Line, len(chunks))
	for i, chunk := range chunks {
		m := *style
		m.Bounds = uniform.Vec2{X: float32(r.StartY), Y: float32(r.EndY)}
		m.Points = linePoints(chunk)
		m.Dirty = true
		out[i] = &m
	}
	return out
}

func linePoints(values []float64) []uniform.Vec2 {
	points := make([]uniform.Vec2, len(values))
	for i, v := range values {
		var x float32
		if len(values) > 1 {
			x = float32(i) / float32(len(values)-1)
		}
		points[i] = uniform.Vec2{X: x, Y: float32(v)}
	}
	return points
}

func (l *Line) UpdateUniformData(state RenderState, dst []byte, old Material) bool {
	w := LineLayout()
	changed := writeState(w.Layout, w.Matrix, w.Opacity, state, dst)

	if old != Material(l) || l.Dirty {
		w.WriteColor(dst, w.LineColor, l.LineColor)
		w.WriteColor(dst, w.FillColor, l.FillColor)
		w.WriteFloat(dst, w.LineWidth, l.LineWidth)
		w.WriteVec2(dst, w.Aspect, l.Aspect)
		w.WriteVec2(dst, w.Bounds, l.Bounds)

		count := min(len(l.Points), MaxPoints)
		w.WriteInt(dst, w.PointCount, int32(count))
		points := make([]float32, 2*MaxPoints)
		for i, p := range l.Points[:count] {
			points[2*i] = p.X
			points[2*i+1] = p.Y
		}
		w.WriteFloats(dst, w.Points, points)

		l.Dirty = false
		changed = true
	}
	return changed
}

// LineWriter is the uniform block of the line shader:
//
//	struct LineUniforms {
//	    matrix: mat4x4<f32>,            // 0
//	    line_color: vec4<f32>,          // 64
//	    fill_color: vec4<f32>,          // 80
//	    line_width: f32,                // 96
//	    aspect: vec2<f32>,              // 104
//	    opacity: f32,                   // 112
//	    point_count: i32,               // 116
//	    bounds: vec2<f32>,              // 120
//	    points: array<vec4<f32>, 50>,   // 128, two points per element
//	}
type LineWriter struct {
	*uniform.Layout
	Matrix     uniform.Handle
	LineColor  uniform.Handle
	FillColor  uniform.Handle
	LineWidth  uniform.Handle
	Aspect     uniform.Handle
	Opacity    uniform.Handle
	PointCount uniform.Handle
	Bounds     uniform.Handle
	Points     uniform.Handle
}

// aspect follows a lone f32, so every member is placed with std140 rules.
var lineWriter = sync.OnceValue(func() *LineWriter {
	w := &LineWriter{Layout: uniform.NewLayout()}
	var s uniform.Std140
	w.Matrix = s.Append(w.Layout, uniform.AlignMat4, uniform.SizeMat4)
	w.LineColor = s.Append(w.Layout, uniform.AlignVec4, uniform.SizeColor)
	w.FillColor = s.Append(w.Layout, uniform.AlignVec4, uniform.SizeColor)
	w.LineWidth = s.Append(w.Layout, uniform.AlignScalar, uniform.SizeFloat)
	w.Aspect = s.Append(w.Layout, uniform.AlignVec2, uniform.SizeVec2)
	w.Opacity = s.Append(w.Layout, uniform.AlignScalar, uniform.SizeFloat)
	w.PointCount = s.Append(w.Layout, uniform.AlignScalar, uniform.SizeInt)
	w.Bounds = s.Append(w.Layout, uniform.AlignVec2, uniform.SizeVec2)
	w.Points = s.Append(w.Layout, uniform.AlignArray, uniform.ArraySize(uniform.SizeVec4, MaxPoints/2))
	return w
})

// LineLayout returns the process-wide line writer, building it on first use.
func LineLayout() *LineWriter {
	return lineWriter()
}
