// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/datasource"
	"github.com/gogpu/charts/internal/geometry"
	"github.com/gogpu/charts/material"
)

func newTestRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

func newTestContext(t *testing.T, w, h int) *gg.Context {
	t.Helper()
	dc := gg.NewContext(w, h)
	t.Cleanup(func() { _ = dc.Close() })
	return dc
}

func TestMapperValue(t *testing.T) {
	area := geometry.Rect{X: 10, Y: 20, W: 100, H: 200}
	rng := charts.NewComputedRange(0, 4, 0, 10)

	tests := []struct {
		dir  charts.Direction
		v    float64
		want float64
	}{
		{charts.ZeroAtBottom, 0, 220},
		{charts.ZeroAtBottom, 10, 20},
		{charts.ZeroAtTop, 0, 20},
		{charts.ZeroAtTop, 5, 120},
		{charts.ZeroAtStart, 0, 10},
		{charts.ZeroAtStart, 10, 110},
		{charts.ZeroAtEnd, 0, 110},
		{charts.ZeroAtEnd, 10, 10},
	}
	for _, tt := range tests {
		m := mapper{area: area, rng: rng, dir: tt.dir}
		if got := m.value(tt.v); got != tt.want {
			t.Errorf("%v value(%v) = %v, want %v", tt.dir, tt.v, got, tt.want)
		}
	}
}

func TestMapperZeroDistance(t *testing.T) {
	m := mapper{
		area: geometry.Rect{W: 100, H: 100},
		rng:  charts.NewComputedRange(0, 3, 5, 5),
		dir:  charts.ZeroAtBottom,
	}
	if got := m.value(5); got != 100 {
		t.Errorf("value(5) = %v, want 100", got)
	}
}

func TestMapperSlot(t *testing.T) {
	m := mapper{
		area: geometry.Rect{X: 10, W: 100, H: 50},
		rng:  charts.NewComputedRange(2, 6, 0, 1),
		dir:  charts.ZeroAtBottom,
	}
	start, size := m.slot(3)
	if start != 35 || size != 25 {
		t.Errorf("slot(3) = (%v, %v), want (35, 25)", start, size)
	}

	m.dir = charts.ZeroAtStart
	start, size = m.slot(2)
	if start != 0 || size != 12.5 {
		t.Errorf("horizontal slot(2) = (%v, %v), want (0, 12.5)", start, size)
	}
}

func TestMapperPoint(t *testing.T) {
	m := mapper{
		area: geometry.Rect{W: 90, H: 100},
		rng:  charts.NewComputedRange(0, 4, 0, 10),
		dir:  charts.ZeroAtBottom,
	}
	if p := m.point(3, 10); p.X != 90 || p.Y != 0 {
		t.Errorf("point(3, 10) = %v, want (90, 0)", p)
	}
	if p := m.point(0, 0); p.X != 0 || p.Y != 100 {
		t.Errorf("point(0, 0) = %v, want (0, 100)", p)
	}
}

func TestMapperRect(t *testing.T) {
	m := mapper{
		area: geometry.Rect{W: 100, H: 100},
		rng:  charts.NewComputedRange(0, 2, -10, 10),
		dir:  charts.ZeroAtBottom,
	}
	x, y, w, h := m.rect(10, 20, 0, -5)
	if x != 10 || y != 50 || w != 20 || h != 25 {
		t.Errorf("rect = (%v, %v, %v, %v), want (10, 50, 20, 25)", x, y, w, h)
	}
}

func TestRenderBarsPaintsSeries(t *testing.T) {
	r := newTestRenderer(t, WithGrid(0), WithColors(gg.Red))
	dc := newTestContext(t, 100, 100)
	chart := charts.NewXYChart(datasource.NewSlice(10.0, 10, 10))
	defer chart.Close()
	chart.SetYRange(charts.ManualRange(0, 20))

	dc.ClearWithColor(gg.White)
	if err := r.Bars(dc, chart, geometry.Rect{W: 100, H: 100}); err != nil {
		t.Fatalf("Bars() error = %v", err)
	}

	c := gg.FromColor(dc.Image().At(50, 75))
	if c.R < 0.9 || c.G > 0.1 {
		t.Errorf("pixel inside bar = %+v, want red", c)
	}
	c = gg.FromColor(dc.Image().At(50, 25))
	if c.G < 0.9 {
		t.Errorf("pixel above chart = %+v, want background", c)
	}
}

func TestRenderBarsEmptyRange(t *testing.T) {
	r := newTestRenderer(t)
	dc := newTestContext(t, 20, 20)
	chart := charts.NewXYChart()
	defer chart.Close()

	if err := r.Bars(dc, chart, geometry.Rect{W: 20, H: 20}); err != nil {
		t.Errorf("Bars() on empty chart error = %v", err)
	}
	if err := r.Lines(dc, chart, geometry.Rect{W: 20, H: 20}); err != nil {
		t.Errorf("Lines() on empty chart error = %v", err)
	}
	if err := r.Axes(dc, chart, geometry.Rect{W: 20, H: 20}); err != nil {
		t.Errorf("Axes() on empty chart error = %v", err)
	}
}

func TestRenderAllKinds(t *testing.T) {
	r := newTestRenderer(t)
	chart := charts.NewXYChart(
		datasource.NewSlice(1.0, 4, 2, 5),
		datasource.NewSlice(-1.0, 2, 3, 1),
	)
	defer chart.Close()
	chart.SetStacked(true)

	for _, kind := range []material.Kind{material.KindBar, material.KindLine, material.KindPie} {
		t.Run(string(kind), func(t *testing.T) {
			dc := newTestContext(t, 160, 120)
			if err := r.Render(dc, kind, chart); err != nil {
				t.Fatalf("Render(%s) error = %v", kind, err)
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	r := newTestRenderer(t)
	chart := charts.NewXYChart(datasource.NewSlice(1.0))
	defer chart.Close()

	err := r.Render(newTestContext(t, 10, 10), material.Kind("radar"), chart)
	if !errors.Is(err, material.ErrUnknownKind) {
		t.Errorf("Render(radar) error = %v, want ErrUnknownKind", err)
	}
}

func TestPieCoversCenter(t *testing.T) {
	r := newTestRenderer(t, WithColors(gg.Blue))
	dc := newTestContext(t, 64, 64)
	dc.ClearWithColor(gg.White)

	if err := r.Pie(dc, datasource.NewSlice(1.0, 1, 1), geometry.Rect{W: 64, H: 64}); err != nil {
		t.Fatalf("Pie() error = %v", err)
	}
	c := gg.FromColor(dc.Image().At(32, 20))
	if c.B < 0.9 || c.R > 0.1 {
		t.Errorf("pixel inside pie = %+v, want blue", c)
	}
}

func TestFormatValueLocale(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		v    float64
		want string
	}{
		{language.English, 1234.5, "1,234.5"},
		{language.German, 1234.5, "1.234,5"},
		{language.English, 0.5, "0.5"},
		{language.English, 2.0 / 3, "0.67"},
	}
	for _, tt := range tests {
		r := newTestRenderer(t, WithLocale(tt.tag))
		got := r.formatValue(tt.v)
		if got != tt.want {
			t.Errorf("%v formatValue(%v) = %q, want %q", tt.tag, tt.v, got, tt.want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	chart := charts.NewXYChart(datasource.NewSlice(3.0, 5, 2))
	defer chart.Close()

	path := filepath.Join(t.TempDir(), "chart.png")
	if err := RenderPNG(path, material.KindBar, chart, 120, 80); err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("RenderPNG() wrote an empty file")
	}
}

func TestRenderPNGInvalidSize(t *testing.T) {
	chart := charts.NewXYChart()
	defer chart.Close()

	err := RenderPNG(filepath.Join(t.TempDir(), "x.png"), material.KindBar, chart, 0, 10)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("RenderPNG(0x10) error = %v, want ErrInvalidSize", err)
	}
}
