// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geometry

// SplitSegments splits values into ceil(n/maxPoints) consecutive chunks
// whose lengths differ by at most one, the longer chunks first. No chunk
// is longer than maxPoints and no value is dropped. The chunks share the
// backing array of values.
//
// Empty input or a non-positive maxPoints gives no chunks.
func SplitSegments[T any](values []T, maxPoints int) [][]T {
	n := len(values)
	if n == 0 || maxPoints <= 0 {
		return nil
	}

	count := (n + maxPoints - 1) / maxPoints
	per, extra := n/count, n%count
	chunks := make([][]T, count)
	start := 0
	for i := range chunks {
		end := start + per
		if i < extra {
			end++
		}
		chunks[i] = values[start:end:end]
		start = end
	}
	return chunks
}
