// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import (
	"math"
	"slices"
	"sync"
)

// Value is one numeric item of a data source.
//
// The zero Value is invalid. Invalid values are what a source returns for
// an index it does not have; they convert to 0.
type Value struct {
	f     float64
	valid bool
}

// Float returns a valid Value holding f.
func Float(f float64) Value {
	return Value{f: f, valid: true}
}

// Int returns a valid Value holding i.
func Int(i int) Value {
	return Value{f: float64(i), valid: true}
}

// Invalid returns the invalid Value.
func Invalid() Value {
	return Value{}
}

// Valid reports whether v holds a number.
func (v Value) Valid() bool {
	return v.valid
}

// Float returns v as a float64, or 0 if v is invalid.
func (v Value) Float() float64 {
	if !v.valid {
		return 0
	}
	return v.f
}

// Int returns v rounded to the nearest integer, or 0 if v is invalid.
func (v Value) Int() int {
	return int(math.Round(v.Float()))
}

// DataSource is one numeric series.
type DataSource interface {
	// ItemCount returns the number of items.
	ItemCount() int
	// Item returns the item at index, or an invalid Value when the source
	// has no item there.
	Item(index int) Value
	// Minimum returns the smallest item.
	Minimum() Value
	// Maximum returns the largest item.
	Maximum() Value
}

// Notifier is implemented by sources whose items can change.
type Notifier interface {
	// OnDataChanged registers fn to be called after every change and
	// returns a function that unregisters it.
	OnDataChanged(fn func()) (cancel func())
}

// First returns the first item of ds.
func First(ds DataSource) Value {
	return ds.Item(0)
}

// Items returns every item of ds as float64.
func Items(ds DataSource) []float64 {
	out := make([]float64, ds.ItemCount())
	for i := range out {
		out[i] = ds.Item(i).Float()
	}
	return out
}

// signal is the listener list behind Notifier implementations. Listeners
// run in registration order.
type signal struct {
	mu        sync.Mutex
	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

func (s *signal) subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool { return l.id == id })
	}
}

// emit calls every listener outside the lock, so listeners may subscribe
// or cancel.
func (s *signal) emit() {
	s.mu.Lock()
	ls := slices.Clone(s.listeners)
	s.mu.Unlock()
	for _, l := range ls {
		l.fn()
	}
}
