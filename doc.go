// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package charts computes the visible coordinate window of bar, line and
// pie charts and hands it to the renderers in the sub-packages.
//
// # Overview
//
// A chart is fed by one or more [datasource.DataSource] values. An
// [XYChart] combines them with an X and a Y [RangeSpec] into a
// [ComputedRange]: integer index bounds on X and real bounds on Y. The
// computation itself is the pure function [ComputeRange]; XYChart layers
// change detection on top of it and only notifies listeners when the
// result actually changes.
//
// # Quick Start
//
//	cpu := datasource.NewSlice(12.5, 40, 33)
//	gpu := datasource.NewSlice(5.0, 7, 64)
//
//	chart := charts.NewXYChart(cpu, gpu)
//	chart.SetStacked(true)
//	cancel := chart.OnComputedRangeChanged(func(r charts.ComputedRange) {
//	    fmt.Println(r)
//	})
//	defer cancel()
//
//	cpu.SetValues([]float64{100, 0, 0}) // prints the new range
//
// # Automatic and manual ranges
//
// An automatic X range spans [0, longest source). An automatic Y range
// spans the data and always includes 0, so the baseline stays visible.
// In stacked mode the Y maximum is the tallest per-index sum of all
// sources. Manual ranges are used verbatim.
//
// # Sub-packages
//
//   - datasource: the DataSource contract and concrete sources
//   - uniform: byte layouts for GPU uniform blocks
//   - material: per-kind uniform writers and WGSL shaders
//   - gpu: uploads uniform blocks through wgpu
//   - preview: CPU rendering of charts with gg
//
// # Logging
//
// charts is silent by default. [SetLogger] enables log output for this
// package and its sub-packages.
package charts
