// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package charts

import "sync"

// RangeSpec configures one axis: either automatic, in which case the
// bounds come from the data, or a manual [From, To] pair.
//
// The zero value is an automatic range from 0 to 0. RangeSpec is safe for
// concurrent use.
type RangeSpec struct {
	mu      sync.RWMutex
	from    float64
	to      float64
	manual  bool
	changed listeners[struct{}]
}

// NewRangeSpec returns an automatic range.
func NewRangeSpec() *RangeSpec {
	return &RangeSpec{}
}

// ManualRange returns a range fixed to [from, to].
func ManualRange(from, to float64) *RangeSpec {
	return &RangeSpec{from: from, to: to, manual: true}
}

// From returns the manual lower bound.
func (r *RangeSpec) From() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.from
}

// To returns the manual upper bound.
func (r *RangeSpec) To() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.to
}

// Automatic reports whether the bounds are derived from the data.
func (r *RangeSpec) Automatic() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.manual
}

// Distance returns To - From. No ordering between the bounds is enforced,
// so the result may be negative.
func (r *RangeSpec) Distance() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.to - r.from
}

// SetFrom sets the manual lower bound.
func (r *RangeSpec) SetFrom(from float64) {
	r.update(func() bool {
		if r.from == from {
			return false
		}
		r.from = from
		return true
	})
}

// SetTo sets the manual upper bound.
func (r *RangeSpec) SetTo(to float64) {
	r.update(func() bool {
		if r.to == to {
			return false
		}
		r.to = to
		return true
	})
}

// Set sets both manual bounds with a single notification.
func (r *RangeSpec) Set(from, to float64) {
	r.update(func() bool {
		if r.from == from && r.to == to {
			return false
		}
		r.from, r.to = from, to
		return true
	})
}

// SetAutomatic switches between automatic and manual bounds. Manual
// bounds are kept while the range is automatic.
func (r *RangeSpec) SetAutomatic(automatic bool) {
	r.update(func() bool {
		if r.manual == !automatic {
			return false
		}
		r.manual = !automatic
		return true
	})
}

// OnChange registers fn to be called after every change.
func (r *RangeSpec) OnChange(fn func()) (cancel func()) {
	return r.changed.subscribe(func(struct{}) { fn() })
}

func (r *RangeSpec) update(apply func() bool) {
	r.mu.Lock()
	changed := apply()
	r.mu.Unlock()
	if changed {
		r.changed.emit(struct{}{})
	}
}

// snapshot reads all fields under one lock. A nil spec is automatic.
func (r *RangeSpec) snapshot() (from, to float64, automatic bool) {
	if r == nil {
		return 0, 0, true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.from, r.to, !r.manual
}
