// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package charts

import (
	"math"

	"github.com/gogpu/charts/datasource"
	"github.com/gogpu/charts/uniform"
)

// PieSegments splits the angle span [from, to], in radians, into one
// (start, end) pair per value, each proportional to its share of the
// total. Negative and NaN values count as 0. A zero or infinite total
// gives no segments.
func PieSegments(values []float64, from, to float64) []uniform.Vec2 {
	var total float64
	for _, v := range values {
		total += share(v)
	}
	if total == 0 || math.IsInf(total, 0) {
		return nil
	}

	span := to - from
	segments := make([]uniform.Vec2, len(values))
	start := from
	for i, v := range values {
		end := start + span*share(v)/total
		segments[i] = uniform.Vec2{X: float32(start), Y: float32(end)}
		start = end
	}
	return segments
}

// share is the weight of v in a pie: v itself if positive, else 0.
func share(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}

// SourceSegments is PieSegments over the items of ds. Invalid items
// count as 0.
func SourceSegments(ds datasource.DataSource, from, to float64) []uniform.Vec2 {
	return PieSegments(datasource.Items(ds), from, to)
}
