// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package datasource provides the numeric series charts are drawn from.
//
// Every source implements [DataSource]: a length, indexed items, and the
// minimum and maximum item. Items are [Value]s, a closed numeric type that
// normalizes integers and floats at the source boundary so range
// computation never has to care which one a source stores. Reading past
// the end of a source yields an invalid Value, which converts to zero.
//
// Sources whose data can change implement [Notifier]; charts subscribe to
// it and recompute their ranges when notified.
//
// Provided sources:
//   - [Slice]: a fixed list of numbers, optionally wrapping around
//   - [Single]: one value
//   - [History]: the most recent N values of a stream, newest first
//   - [FromValuer]: an adapter for gonum plotter.Valuer data
//   - [Column]: one numeric column read by [ReadCSV] or [LoadCSVFile]
//
// [Watch] re-reads a file-backed source when the file is written.
package datasource
