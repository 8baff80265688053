// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geometry builds the vertex data of chart decorations.
package geometry

import "github.com/gogpu/gg"

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// GridLines returns the endpoints of grid lines across r, two points per
// line. With vertical set the lines are stacked vertically: horizontal
// lines at the top edge, every spacing below it and at the bottom edge.
// Otherwise they are vertical lines from the left edge to the right edge.
//
// A non-positive spacing or an empty rectangle gives no lines.
func GridLines(r Rect, spacing float64, vertical bool) []gg.Point {
	if spacing <= 0 || r.Empty() {
		return nil
	}

	extent := r.W
	if vertical {
		extent = r.H
	}
	points := make([]gg.Point, 0, (int(extent/spacing)+2)*2)

	line := func(offset float64) {
		if vertical {
			points = append(points, gg.Point{X: r.X, Y: r.Y + offset}, gg.Point{X: r.X + r.W, Y: r.Y + offset})
		} else {
			points = append(points, gg.Point{X: r.X + offset, Y: r.Y}, gg.Point{X: r.X + offset, Y: r.Y + r.H})
		}
	}

	line(0)
	for i := spacing; i < extent; i += spacing {
		line(i)
	}
	line(extent)
	return points
}
