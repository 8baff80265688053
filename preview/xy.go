// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"github.com/gogpu/gg"
	"golang.org/x/text/number"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/internal/geometry"
)

// mapper converts item indices and values into pixels for one chart
// direction.
type mapper struct {
	area geometry.Rect
	rng  charts.ComputedRange
	dir  charts.Direction
}

// fraction returns where v lies across the value axis, 0 at its start.
func (m mapper) fraction(v float64) float64 {
	if m.rng.DistanceY == 0 {
		return 0
	}
	return (v - m.rng.StartY) / m.rng.DistanceY
}

// value returns the pixel coordinate of v along the value axis.
func (m mapper) value(v float64) float64 {
	f := m.fraction(v)
	switch m.dir {
	case charts.ZeroAtTop:
		return m.area.Y + f*m.area.H
	case charts.ZeroAtStart:
		return m.area.X + f*m.area.W
	case charts.ZeroAtEnd:
		return m.area.X + m.area.W - f*m.area.W
	default:
		return m.area.Y + m.area.H - f*m.area.H
	}
}

// slot returns the start and size in pixels of item i along the index
// axis, with every item of the range getting an equal share.
func (m mapper) slot(i int) (start, size float64) {
	extent, origin := m.area.W, m.area.X
	if m.dir.Horizontal() {
		extent, origin = m.area.H, m.area.Y
	}
	size = extent / float64(m.rng.DistanceX)
	return origin + float64(i-m.rng.StartX)*size, size
}

// point returns the pixel position of value v of item i for line charts,
// where the first and last item sit on the edges of the area.
func (m mapper) point(i int, v float64) gg.Point {
	f := 0.0
	if m.rng.DistanceX > 1 {
		f = float64(i-m.rng.StartX) / float64(m.rng.DistanceX-1)
	}
	if m.dir.Horizontal() {
		return gg.Point{X: m.value(v), Y: m.area.Y + f*m.area.H}
	}
	return gg.Point{X: m.area.X + f*m.area.W, Y: m.value(v)}
}

// rect returns the rectangle spanning values from..to inside the index
// band [start, start+size).
func (m mapper) rect(start, size, from, to float64) (x, y, w, h float64) {
	a, b := m.value(from), m.value(to)
	lo, hi := min(a, b), max(a, b)
	if m.dir.Horizontal() {
		return lo, start, hi - lo, size
	}
	return start, lo, size, hi - lo
}

func newMapper(chart *charts.XYChart, area geometry.Rect) (mapper, bool) {
	m := mapper{area: area, rng: chart.ComputedRange(), dir: chart.Direction()}
	return m, !m.rng.Empty() && !area.Empty()
}

// barPadding is the share of each item's band left empty around its bars.
const barPadding = 0.2

// Bars draws a bar per item and source. Stacked charts stack the sources
// of each item, positive values upwards from zero and negative values
// downwards; otherwise the sources sit side by side.
func (r *Renderer) Bars(dc *gg.Context, chart *charts.XYChart, area geometry.Rect) error {
	m, ok := newMapper(chart, area)
	if !ok {
		return nil
	}
	sources := chart.Sources()
	if len(sources) == 0 {
		return nil
	}
	stacked := chart.Stacked()

	for i := m.rng.StartX; i < m.rng.EndX; i++ {
		start, size := m.slot(i)
		start += size * barPadding / 2
		size *= 1 - barPadding

		var up, down float64
		for s, src := range sources {
			v := src.Item(i).Float()
			from, to := 0.0, v
			band, width := start, size
			if stacked {
				if v >= 0 {
					from, to = up, up+v
					up = to
				} else {
					from, to = down, down+v
					down = to
				}
			} else {
				width = size / float64(len(sources))
				band = start + float64(s)*width
			}

			x, y, w, h := m.rect(band, width, from, to)
			if w <= 0 || h <= 0 {
				continue
			}
			dc.SetColor(r.color(s).Color())
			dc.DrawRectangle(x, y, w, h)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Lines draws one polyline per source. Stacked charts draw the running
// sum of the sources.
func (r *Renderer) Lines(dc *gg.Context, chart *charts.XYChart, area geometry.Rect) error {
	m, ok := newMapper(chart, area)
	if !ok {
		return nil
	}
	sources := chart.Sources()
	base := make([]float64, m.rng.DistanceX)
	dc.SetLineWidth(r.opts.lineWidth)

	for s, src := range sources {
		for i := m.rng.StartX; i < m.rng.EndX; i++ {
			v := src.Item(i).Float()
			if chart.Stacked() {
				v += base[i-m.rng.StartX]
				base[i-m.rng.StartX] = v
			}
			p := m.point(i, v)
			if i == m.rng.StartX {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.SetColor(r.color(s).Color())
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// Axes draws the value axis with tick labels and the index axis line.
func (r *Renderer) Axes(dc *gg.Context, chart *charts.XYChart, area geometry.Rect) error {
	m, ok := newMapper(chart, area)
	if !ok {
		return nil
	}

	dc.SetColor(r.opts.foreground.Color())
	dc.SetLineWidth(1)
	zero := m.value(0)
	if m.dir.Horizontal() {
		dc.DrawLine(zero, area.Y, zero, area.Y+area.H)
	} else {
		dc.DrawLine(area.X, zero, area.X+area.W, zero)
	}
	if err := dc.Stroke(); err != nil {
		return err
	}

	dc.SetFont(r.opts.face)
	ticks := charts.NewAxisSource(chart, charts.AxisY, r.opts.ticks)
	for i := 0; i < ticks.ItemCount(); i++ {
		v := ticks.Item(i).Float()
		label := r.formatValue(v)
		if m.dir.Horizontal() {
			dc.DrawStringAnchored(label, m.value(v), area.Y+area.H+4, 0.5, 1)
		} else {
			dc.DrawStringAnchored(label, area.X-6, m.value(v), 1, 0.5)
		}
	}
	return nil
}

func (r *Renderer) formatValue(v float64) string {
	return r.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
