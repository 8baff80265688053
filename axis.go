// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package charts

import (
	"math"

	"github.com/gogpu/charts/datasource"
)

// Axis selects one axis of an XY chart.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// AxisSource is a data source of evenly spaced values across one axis of
// a chart's computed range, typically used as tick labels. Item i is
// start + distance*i/(count-1); a single item is the start of the axis.
type AxisSource struct {
	chart *XYChart
	axis  Axis
	count int
}

var (
	_ datasource.DataSource = (*AxisSource)(nil)
	_ datasource.Notifier   = (*AxisSource)(nil)
)

// NewAxisSource returns count values spanning axis of chart. A negative
// count is treated as 0.
//
// The source reads the chart's range on every Item call, so it must not
// be added as a source of the same chart: the chart computes its range
// under its lock and reading the range again would deadlock.
func NewAxisSource(chart *XYChart, axis Axis, count int) *AxisSource {
	return &AxisSource{chart: chart, axis: axis, count: max(0, count)}
}

func (a *AxisSource) ItemCount() int {
	return a.count
}

func (a *AxisSource) Item(index int) datasource.Value {
	if index < 0 || index >= a.count {
		return datasource.Invalid()
	}
	start, distance := a.span()
	if a.count == 1 {
		return datasource.Float(start)
	}
	return datasource.Float(start + distance*float64(index)/float64(a.count-1))
}

func (a *AxisSource) Minimum() datasource.Value {
	if a.count == 0 {
		return datasource.Invalid()
	}
	first, last := a.Item(0).Float(), a.Item(a.count-1).Float()
	return datasource.Float(math.Min(first, last))
}

func (a *AxisSource) Maximum() datasource.Value {
	if a.count == 0 {
		return datasource.Invalid()
	}
	first, last := a.Item(0).Float(), a.Item(a.count-1).Float()
	return datasource.Float(math.Max(first, last))
}

// OnDataChanged follows the chart's computed range.
func (a *AxisSource) OnDataChanged(fn func()) func() {
	return a.chart.OnComputedRangeChanged(func(ComputedRange) { fn() })
}

func (a *AxisSource) span() (start, distance float64) {
	r := a.chart.ComputedRange()
	if a.axis == AxisX {
		return float64(r.StartX), float64(r.DistanceX)
	}
	return r.StartY, r.DistanceY
}
