// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import "gonum.org/v1/plot/plotter"

type valuerSource struct {
	v plotter.Valuer
}

// FromValuer exposes gonum plot data as a read-only source. The Valuer is
// read on every call, so it must not be modified while a chart uses it.
func FromValuer(v plotter.Valuer) DataSource {
	return valuerSource{v: v}
}

func (s valuerSource) ItemCount() int {
	return s.v.Len()
}

func (s valuerSource) Item(index int) Value {
	if index < 0 || index >= s.v.Len() {
		return Invalid()
	}
	return Float(s.v.Value(index))
}

func (s valuerSource) Minimum() Value {
	if s.v.Len() == 0 {
		return Invalid()
	}
	lo, _ := plotter.Range(s.v)
	return Float(lo)
}

func (s valuerSource) Maximum() Value {
	if s.v.Len() == 0 {
		return Invalid()
	}
	_, hi := plotter.Range(s.v)
	return Float(hi)
}
