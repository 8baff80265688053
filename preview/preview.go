// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview renders charts on the CPU with gg.
//
// It draws the same chart model the GPU shaders consume, so a chart can be
// checked, or exported as an image, without a GPU device.
//
//	chart := charts.NewXYChart(datasource.NewSlice(3.0, 5, 2))
//	if err := preview.RenderPNG("chart.png", material.KindBar, chart, 640, 480); err != nil {
//	    log.Fatal(err)
//	}
package preview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/message"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/internal/geometry"
	"github.com/gogpu/charts/material"
)

// ErrInvalidSize is returned for an image without area.
var ErrInvalidSize = errors.New("preview: invalid image size")

// Renderer draws charts into a gg.Context.
type Renderer struct {
	opts    options
	printer *message.Printer
}

// NewRenderer returns a renderer configured by opts.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.face == nil {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("preview: load default font: %w", err)
		}
		o.face = source.Face(o.fontSize)
	}
	return &Renderer{opts: o, printer: message.NewPrinter(o.locale)}, nil
}

// Render clears dc and draws a complete chart of the given kind: grid,
// series and axes for bar and line charts, a legend-free pie for pie
// charts. Pie charts use the first source of chart.
func (r *Renderer) Render(dc *gg.Context, kind material.Kind, chart *charts.XYChart) error {
	if dc.Width() <= 0 || dc.Height() <= 0 {
		return ErrInvalidSize
	}
	dc.ClearWithColor(r.opts.background)
	area := r.plotArea(dc)

	switch kind {
	case material.KindPie:
		sources := chart.Sources()
		if len(sources) == 0 {
			return nil
		}
		return r.Pie(dc, sources[0], area)
	case material.KindBar, material.KindLine:
		if err := r.Grid(dc, area); err != nil {
			return err
		}
		draw := r.Bars
		if kind == material.KindLine {
			draw = r.Lines
		}
		if err := draw(dc, chart, area); err != nil {
			return err
		}
		return r.Axes(dc, chart, area)
	default:
		return fmt.Errorf("preview: %w: %q", material.ErrUnknownKind, kind)
	}
}

// RenderPNG renders chart into a new w by h image and saves it at path.
func RenderPNG(path string, kind material.Kind, chart *charts.XYChart, w, h int, opts ...Option) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	r, err := NewRenderer(opts...)
	if err != nil {
		return err
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	if err := r.Render(dc, kind, chart); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("preview: save %s: %w", path, err)
	}
	charts.Logger().Info("preview: chart rendered", "path", path, "kind", string(kind), "width", w, "height", h)
	return nil
}

// Grid strokes horizontal and vertical grid lines across area.
func (r *Renderer) Grid(dc *gg.Context, area geometry.Rect) error {
	if r.opts.grid <= 0 {
		return nil
	}
	dc.SetColor(r.opts.gridColor.Color())
	dc.SetLineWidth(1)
	for _, vertical := range []bool{false, true} {
		points := geometry.GridLines(area, r.opts.grid, vertical)
		for i := 0; i+1 < len(points); i += 2 {
			dc.DrawLine(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y)
		}
	}
	return dc.Stroke()
}

func (r *Renderer) plotArea(dc *gg.Context) geometry.Rect {
	m := r.opts.margin
	w, h := float64(dc.Width()), float64(dc.Height())
	if w <= 2*m || h <= 2*m {
		return geometry.Rect{W: w, H: h}
	}
	return geometry.Rect{X: m, Y: m / 2, W: w - 1.5*m, H: h - 1.5*m}
}

func (r *Renderer) color(i int) gg.RGBA {
	return r.opts.colors[i%len(r.opts.colors)]
}
