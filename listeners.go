// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package charts

import (
	"slices"
	"sync"
)

// listeners is an ordered list of callbacks. Callbacks run in
// registration order, outside the lock, so they may subscribe or cancel.
type listeners[T any] struct {
	mu     sync.Mutex
	nextID int
	fns    []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

func (l *listeners[T]) subscribe(fn func(T)) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.fns = append(l.fns, listener[T]{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.fns = slices.DeleteFunc(l.fns, func(x listener[T]) bool { return x.id == id })
	}
}

func (l *listeners[T]) emit(v T) {
	l.mu.Lock()
	fns := slices.Clone(l.fns)
	l.mu.Unlock()
	for _, x := range fns {
		x.fn(v)
	}
}
