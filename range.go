// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package charts

import (
	"fmt"
	"math"

	"github.com/gogpu/charts/datasource"
)

// fuzzyEpsilon is the relative tolerance used to compare Y bounds.
const fuzzyEpsilon = 1e-5

// ComputedRange is the resolved window of an XY chart: integer item
// indices on X, real values on Y. Distances are always derived from the
// bounds; use NewComputedRange rather than setting them by hand.
type ComputedRange struct {
	StartX    int
	EndX      int
	DistanceX int

	StartY    float64
	EndY      float64
	DistanceY float64
}

// NewComputedRange returns a range with its distances filled in.
func NewComputedRange(startX, endX int, startY, endY float64) ComputedRange {
	return ComputedRange{
		StartX:    startX,
		EndX:      endX,
		DistanceX: endX - startX,
		StartY:    startY,
		EndY:      endY,
		DistanceY: endY - startY,
	}
}

// Equal reports whether r and other describe the same window. X bounds
// must match exactly; Y bounds are compared with a relative tolerance,
// since they come out of floating point aggregation.
func (r ComputedRange) Equal(other ComputedRange) bool {
	return r.StartX == other.StartX &&
		r.EndX == other.EndX &&
		fuzzyEqual(r.StartY, other.StartY) &&
		fuzzyEqual(r.EndY, other.EndY)
}

// Empty reports whether the X window holds no items.
func (r ComputedRange) Empty() bool {
	return r.EndX <= r.StartX
}

func (r ComputedRange) String() string {
	return fmt.Sprintf("x [%d, %d) distance %d, y [%g, %g] distance %g",
		r.StartX, r.EndX, r.DistanceX, r.StartY, r.EndY, r.DistanceY)
}

// fuzzyEqual compares a and b relative to their magnitude, with values
// near zero compared absolutely.
func fuzzyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= fuzzyEpsilon*scale
}

// ComputeRange derives the window of a chart from its sources and axis
// configuration. A nil RangeSpec is automatic.
//
// Automatic X spans [0, longest ItemCount). With no sources it is [0, -1],
// which callers must treat as empty. Automatic Y spans the data and is
// clamped to include 0; stacked charts use the tallest per-index sum.
// Manual bounds are used verbatim, with X truncated to integers.
//
// ComputeRange never fails: degenerate inputs give degenerate ranges.
func ComputeRange(sources []datasource.DataSource, x, y *RangeSpec, stacked bool) ComputedRange {
	var startX, endX int
	if from, to, auto := x.snapshot(); auto {
		startX, endX = 0, automaticEndX(sources)
	} else {
		startX, endX = int(from), int(to)
	}

	var startY, endY float64
	if from, to, auto := y.snapshot(); !auto {
		startY, endY = from, to
	} else if len(sources) > 0 {
		if stacked {
			startY, endY = stackedY(sources, startX, endX)
		} else {
			startY, endY = unstackedY(sources)
		}
	}

	return NewComputedRange(startX, endX, startY, endY)
}

func automaticEndX(sources []datasource.DataSource) int {
	endX := -1
	for _, s := range sources {
		endX = max(endX, s.ItemCount())
	}
	return endX
}

// minimumY is the smallest Minimum of all sources. Sources without a
// valid minimum are skipped; ok is false if none had one.
func minimumY(sources []datasource.DataSource) (minY float64, ok bool) {
	minY = math.MaxFloat64
	for _, s := range sources {
		if v := s.Minimum(); v.Valid() {
			minY = math.Min(minY, v.Float())
			ok = true
		}
	}
	return minY, ok
}

func unstackedY(sources []datasource.DataSource) (startY, endY float64) {
	minY, hasMin := minimumY(sources)
	maxY, hasMax := -math.MaxFloat64, false
	for _, s := range sources {
		if v := s.Maximum(); v.Valid() {
			maxY = math.Max(maxY, v.Float())
			hasMax = true
		}
	}
	if hasMin {
		startY = math.Min(0, minY)
	}
	if hasMax {
		endY = math.Max(0, maxY)
	}
	return startY, endY
}

// stackedY sums the items of all sources per index. The lowest minimum is
// taken once as a floor; negative items are not accumulated per index.
func stackedY(sources []datasource.DataSource, startX, endX int) (startY, endY float64) {
	minY, ok := minimumY(sources)
	if !ok {
		minY = 0
	}
	base := math.Max(0, minY)

	maxY := math.Inf(-1)
	for i := startX; i < endX; i++ {
		var height float64
		for _, s := range sources {
			height += s.Item(i).Float()
		}
		maxY = math.Max(maxY, base+height)
	}
	return math.Min(0, minY), math.Max(0, maxY)
}
