// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"
)

// Option configures a Renderer.
//
// Example:
//
//	r, err := preview.NewRenderer(
//	    preview.WithBackground(gg.White),
//	    preview.WithLocale(language.German),
//	)
type Option func(*options)

type options struct {
	colors     []gg.RGBA
	background gg.RGBA
	foreground gg.RGBA
	gridColor  gg.RGBA
	face       text.Face
	fontSize   float64
	locale     language.Tag
	grid       float64
	ticks      int
	lineWidth  float64
	margin     float64
}

// defaultColors is the series palette used when none is configured.
var defaultColors = []gg.RGBA{
	gg.Hex("#1f77b4"),
	gg.Hex("#ff7f0e"),
	gg.Hex("#2ca02c"),
	gg.Hex("#d62728"),
	gg.Hex("#9467bd"),
	gg.Hex("#8c564b"),
	gg.Hex("#e377c2"),
	gg.Hex("#7f7f7f"),
}

func defaultOptions() options {
	return options{
		colors:     defaultColors,
		background: gg.White,
		foreground: gg.Hex("#333333"),
		gridColor:  gg.Hex("#dddddd"),
		fontSize:   12,
		locale:     language.English,
		grid:       40,
		ticks:      5,
		lineWidth:  2,
		margin:     48,
	}
}

// WithColors sets the series palette. Series past its end reuse it from
// the start. An empty palette keeps the default.
func WithColors(colors ...gg.RGBA) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.colors = colors
		}
	}
}

// WithBackground sets the color the image is cleared to.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFontFace sets the face of axis labels. The default is Go Regular at
// 12 points.
func WithFontFace(face text.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithLocale sets the language used to format tick values.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithGrid sets the grid spacing in pixels. Zero disables the grid.
func WithGrid(spacing float64) Option {
	return func(o *options) {
		o.grid = spacing
	}
}

// WithTicks sets the number of labels on the value axis.
func WithTicks(n int) Option {
	return func(o *options) {
		o.ticks = n
	}
}

// WithLineWidth sets the stroke width of line charts.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}
