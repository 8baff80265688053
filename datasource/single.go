// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import "sync"

// Single is a source with exactly one item.
type Single struct {
	mu      sync.RWMutex
	value   Value
	changed signal
}

var (
	_ DataSource = (*Single)(nil)
	_ Notifier   = (*Single)(nil)
)

// NewSingle returns a source holding v.
func NewSingle(v Value) *Single {
	return &Single{value: v}
}

// Set replaces the value. Listeners are only notified when it changes.
func (s *Single) Set(v Value) {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return
	}
	s.value = v
	s.mu.Unlock()
	s.changed.emit()
}

func (s *Single) ItemCount() int { return 1 }

func (s *Single) Item(index int) Value {
	if index != 0 {
		return Invalid()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *Single) Minimum() Value { return s.Item(0) }

func (s *Single) Maximum() Value { return s.Item(0) }

func (s *Single) OnDataChanged(fn func()) func() {
	return s.changed.subscribe(fn)
}
