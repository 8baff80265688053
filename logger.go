// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package charts

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/charts/datasource"
	"github.com/gogpu/charts/uniform"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for charts and all its sub-packages.
// By default, charts produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by charts:
//   - [slog.LevelDebug]: range recomputation, uniform size mismatches
//   - [slog.LevelInfo]: lifecycle events (shader compiled, file reloaded)
//   - [slog.LevelWarn]: non-fatal issues (bad CSV cells, watch errors)
//
// Example:
//
//	charts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Leaf packages keep their own pointer to avoid importing charts.
	uniform.SetLogger(l)
	datasource.SetLogger(l)
}

// Logger returns the current logger used by charts. Sub-packages that sit
// above charts in the import graph (material, gpu, preview) call this to
// share the same configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
