// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package charts

import (
	"slices"
	"sync"

	"github.com/gogpu/charts/datasource"
)

// Direction is the orientation of an XY chart. It only affects how
// renderers map values to pixels, never the computed range.
type Direction int

const (
	// ZeroAtStart grows bars from the left edge to the right.
	ZeroAtStart Direction = iota
	// ZeroAtEnd grows bars from the right edge to the left.
	ZeroAtEnd
	// ZeroAtTop grows bars from the top edge downwards.
	ZeroAtTop
	// ZeroAtBottom grows bars from the bottom edge upwards.
	ZeroAtBottom
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case ZeroAtStart:
		return "ZeroAtStart"
	case ZeroAtEnd:
		return "ZeroAtEnd"
	case ZeroAtTop:
		return "ZeroAtTop"
	case ZeroAtBottom:
		return "ZeroAtBottom"
	default:
		return "Unknown"
	}
}

// Horizontal reports whether values grow along the X axis of the screen.
func (d Direction) Horizontal() bool {
	return d == ZeroAtStart || d == ZeroAtEnd
}

// XYChart owns the sources and axis configuration of a bar or line chart
// and keeps its ComputedRange up to date.
//
// The chart subscribes to its RangeSpecs and to every source implementing
// [datasource.Notifier]. Each change recomputes the range; listeners are
// only called when the result differs from the cached one.
//
// XYChart is safe for concurrent use. Notifications run on the goroutine
// that made the change and are delivered one at a time; the last range
// delivered is always the cached one. Listeners must not modify the chart
// synchronously.
type XYChart struct {
	mu        sync.Mutex
	sources   []datasource.DataSource
	cancels   []func()
	x, y      *RangeSpec
	cancelX   func()
	cancelY   func()
	stacked   bool
	direction Direction
	computed  ComputedRange

	// emitMu orders notifications; emitted is the range listeners last saw.
	emitMu  sync.Mutex
	emitted ComputedRange
	changed listeners[ComputedRange]
}

// NewXYChart returns a chart over sources with automatic X and Y ranges,
// unstacked, with ZeroAtBottom direction.
func NewXYChart(sources ...datasource.DataSource) *XYChart {
	c := &XYChart{
		x:         NewRangeSpec(),
		y:         NewRangeSpec(),
		direction: ZeroAtBottom,
	}
	c.cancelX = c.x.OnChange(c.Update)
	c.cancelY = c.y.OnChange(c.Update)
	for _, s := range sources {
		c.sources = append(c.sources, s)
		c.cancels = append(c.cancels, c.watch(s))
	}
	c.computed = ComputeRange(c.sources, c.x, c.y, c.stacked)
	c.emitted = c.computed
	return c
}

// XRange returns the X axis configuration.
func (c *XYChart) XRange() *RangeSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.x
}

// YRange returns the Y axis configuration.
func (c *XYChart) YRange() *RangeSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.y
}

// SetXRange replaces the X axis configuration. A nil range is replaced by
// an automatic one.
func (c *XYChart) SetXRange(r *RangeSpec) {
	c.setRange(&c.x, &c.cancelX, r)
}

// SetYRange replaces the Y axis configuration. A nil range is replaced by
// an automatic one.
func (c *XYChart) SetYRange(r *RangeSpec) {
	c.setRange(&c.y, &c.cancelY, r)
}

func (c *XYChart) setRange(dst **RangeSpec, cancel *func(), r *RangeSpec) {
	if r == nil {
		r = NewRangeSpec()
	}
	c.mu.Lock()
	if *dst == r {
		c.mu.Unlock()
		return
	}
	(*cancel)()
	*dst = r
	*cancel = r.OnChange(c.Update)
	c.mu.Unlock()
	c.Update()
}

// AddSource appends a source.
func (c *XYChart) AddSource(s datasource.DataSource) {
	c.mu.Lock()
	c.sources = append(c.sources, s)
	c.cancels = append(c.cancels, c.watch(s))
	c.mu.Unlock()
	c.Update()
}

// RemoveSource removes the first occurrence of s. It reports whether s was
// found.
func (c *XYChart) RemoveSource(s datasource.DataSource) bool {
	c.mu.Lock()
	i := slices.Index(c.sources, s)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.cancels[i]()
	c.sources = slices.Delete(c.sources, i, i+1)
	c.cancels = slices.Delete(c.cancels, i, i+1)
	c.mu.Unlock()
	c.Update()
	return true
}

// SetSources replaces all sources.
func (c *XYChart) SetSources(sources ...datasource.DataSource) {
	c.mu.Lock()
	for _, cancel := range c.cancels {
		cancel()
	}
	c.sources = slices.Clone(sources)
	c.cancels = make([]func(), len(sources))
	for i, s := range sources {
		c.cancels[i] = c.watch(s)
	}
	c.mu.Unlock()
	c.Update()
}

// Sources returns the current sources in order.
func (c *XYChart) Sources() []datasource.DataSource {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.sources)
}

// Stacked reports whether Y is computed from per-index sums.
func (c *XYChart) Stacked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stacked
}

// SetStacked enables or disables stacked mode.
func (c *XYChart) SetStacked(stacked bool) {
	c.mu.Lock()
	if c.stacked == stacked {
		c.mu.Unlock()
		return
	}
	c.stacked = stacked
	c.mu.Unlock()
	c.Update()
}

// Direction returns the orientation of the chart.
func (c *XYChart) Direction() Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction
}

// SetDirection changes the orientation of the chart.
func (c *XYChart) SetDirection(d Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.direction = d
}

// ComputedRange returns the cached range.
func (c *XYChart) ComputedRange() ComputedRange {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computed
}

// OnComputedRangeChanged registers fn to be called with every new range.
func (c *XYChart) OnComputedRangeChanged(fn func(ComputedRange)) (cancel func()) {
	return c.changed.subscribe(fn)
}

// Update recomputes the range. If the result equals the cached range it
// is discarded; otherwise it is cached and listeners are notified.
func (c *XYChart) Update() {
	c.mu.Lock()
	r := ComputeRange(c.sources, c.x, c.y, c.stacked)
	if r.Equal(c.computed) {
		c.mu.Unlock()
		return
	}
	c.computed = r
	c.mu.Unlock()

	c.notify()
}

// notify delivers the cached range unless listeners already have it. A
// notifier that lost the race to a newer Update delivers that newer range,
// so listeners never end on a stale one.
func (c *XYChart) notify() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	r := c.computed
	if r.Equal(c.emitted) {
		c.mu.Unlock()
		return
	}
	c.emitted = r
	c.mu.Unlock()

	Logger().Debug("charts: computed range changed", "range", r.String())
	c.changed.emit(r)
}

// Close unsubscribes the chart from its sources and ranges. The chart
// keeps its last range but no longer follows changes.
func (c *XYChart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = make([]func(), len(c.sources))
	for i := range c.cancels {
		c.cancels[i] = func() {}
	}
	c.cancelX()
	c.cancelY()
	c.cancelX, c.cancelY = func() {}, func() {}
}

func (c *XYChart) watch(s datasource.DataSource) func() {
	if n, ok := s.(datasource.Notifier); ok {
		return n.OnDataChanged(c.Update)
	}
	return func() {}
}
