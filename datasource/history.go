// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/eapache/queue"
)

// DefaultHistoryLength is the capacity NewHistory uses for a non-positive
// length.
const DefaultHistoryLength = 10

// History keeps the most recent values of a stream. Item(0) is the newest
// value; once the history is full, appending drops the oldest one.
//
// History is safe for one goroutine appending while others read.
type History struct {
	mu      sync.RWMutex
	samples *queue.Queue
	length  int
	changed signal
}

var (
	_ DataSource = (*History)(nil)
	_ Notifier   = (*History)(nil)
)

// NewHistory returns an empty history holding at most length values.
func NewHistory(length int) *History {
	if length <= 0 {
		length = DefaultHistoryLength
	}
	return &History{samples: queue.New(), length: length}
}

// Append records v as the newest value. Invalid values are ignored.
func (h *History) Append(v Value) {
	if !v.Valid() {
		return
	}
	h.mu.Lock()
	h.samples.Add(v.Float())
	for h.samples.Length() > h.length {
		h.samples.Remove()
	}
	h.mu.Unlock()
	h.changed.emit()
}

// SetLength changes the capacity, dropping the oldest values if the
// history holds more than length.
func (h *History) SetLength(length int) {
	if length <= 0 {
		length = DefaultHistoryLength
	}
	h.mu.Lock()
	h.length = length
	trimmed := false
	for h.samples.Length() > h.length {
		h.samples.Remove()
		trimmed = true
	}
	h.mu.Unlock()
	if trimmed {
		h.changed.emit()
	}
}

// Length returns the capacity.
func (h *History) Length() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.length
}

// Clear drops every value.
func (h *History) Clear() {
	h.mu.Lock()
	h.samples = queue.New()
	h.mu.Unlock()
	h.changed.emit()
}

// Sample appends the first item of src every interval until ctx is done.
// It blocks; run it on its own goroutine.
func (h *History) Sample(ctx context.Context, src DataSource, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v := First(src)
			if !v.Valid() {
				Logger().Debug("history: source has no first item, sample skipped")
				continue
			}
			h.Append(v)
		}
	}
}

func (h *History) ItemCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.samples.Length()
}

func (h *History) Item(index int) Value {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := h.samples.Length()
	if index < 0 || index >= n {
		return Invalid()
	}
	return Float(h.samples.Get(n - 1 - index).(float64))
}

func (h *History) Minimum() Value {
	return h.extreme(math.Min)
}

func (h *History) Maximum() Value {
	return h.extreme(math.Max)
}

func (h *History) extreme(pick func(a, b float64) float64) Value {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := h.samples.Length()
	if n == 0 {
		return Invalid()
	}
	out := h.samples.Get(0).(float64)
	for i := 1; i < n; i++ {
		out = pick(out, h.samples.Get(i).(float64))
	}
	return Float(out)
}

func (h *History) OnDataChanged(fn func()) func() {
	return h.changed.subscribe(fn)
}
