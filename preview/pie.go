// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/datasource"
	"github.com/gogpu/charts/internal/geometry"
)

// Pie draws one slice per item of src, starting at the top and running
// clockwise, centred in area.
func (r *Renderer) Pie(dc *gg.Context, src datasource.DataSource, area geometry.Rect) error {
	if area.Empty() {
		return nil
	}
	cx, cy := area.X+area.W/2, area.Y+area.H/2
	radius := min(area.W, area.H) / 2

	// Segment angles start at the top; gg measures from the positive X axis.
	const top = -math.Pi / 2
	for i, s := range charts.SourceSegments(src, 0, 2*math.Pi) {
		from, to := top+float64(s.X), top+float64(s.Y)
		if to-from <= 0 {
			continue
		}
		dc.MoveTo(cx, cy)
		dc.LineTo(cx+radius*math.Cos(from), cy+radius*math.Sin(from))
		dc.DrawArc(cx, cy, radius, from, to)
		dc.ClosePath()
		dc.SetColor(r.color(i).Color())
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
