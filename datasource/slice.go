// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import (
	"slices"
	"sync"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Slice can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Slice is a source backed by a list of numbers.
//
// With wrapping enabled, Item accepts any index and reads the list
// cyclically; without it, indices outside the list are invalid.
type Slice[T Number] struct {
	mu      sync.RWMutex
	values  []T
	wrap    bool
	changed signal
}

var (
	_ DataSource = (*Slice[float64])(nil)
	_ Notifier   = (*Slice[int])(nil)
)

// NewSlice returns a source holding a copy of values.
func NewSlice[T Number](values ...T) *Slice[T] {
	return &Slice[T]{values: slices.Clone(values)}
}

// SetValues replaces the items and notifies listeners.
func (s *Slice[T]) SetValues(values []T) {
	s.mu.Lock()
	s.values = slices.Clone(values)
	s.mu.Unlock()
	s.changed.emit()
}

// Values returns a copy of the items.
func (s *Slice[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.values)
}

// SetWrap enables or disables cyclic indexing.
func (s *Slice[T]) SetWrap(wrap bool) {
	s.mu.Lock()
	if s.wrap == wrap {
		s.mu.Unlock()
		return
	}
	s.wrap = wrap
	s.mu.Unlock()
	s.changed.emit()
}

// Wrap reports whether cyclic indexing is enabled.
func (s *Slice[T]) Wrap() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wrap
}

func (s *Slice[T]) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func (s *Slice[T]) Item(index int) Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.values)
	if n == 0 {
		return Invalid()
	}
	if s.wrap {
		index = ((index % n) + n) % n
	}
	if index < 0 || index >= n {
		return Invalid()
	}
	return Float(float64(s.values[index]))
}

func (s *Slice[T]) Minimum() Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.values) == 0 {
		return Invalid()
	}
	return Float(float64(slices.Min(s.values)))
}

func (s *Slice[T]) Maximum() Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.values) == 0 {
		return Invalid()
	}
	return Float(float64(slices.Max(s.values)))
}

func (s *Slice[T]) OnDataChanged(fn func()) func() {
	return s.changed.subscribe(fn)
}
