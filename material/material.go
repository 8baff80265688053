// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"errors"

	"github.com/gogpu/charts/uniform"
)

// Kind names a chart shader.
type Kind string

// Built-in kinds.
const (
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
	KindLine Kind = "line"
)

var (
	// ErrUnknownKind is returned when no shader is registered for a kind.
	ErrUnknownKind = errors.New("material: unknown kind")

	// ErrEmptyShader is returned when a registered kind has no source.
	ErrEmptyShader = errors.New("material: empty shader source")
)

// RenderState is the per-draw state shared by all kinds. The dirty flags
// tell UpdateUniformData which parts of it changed since the last call.
type RenderState struct {
	Matrix       uniform.Mat4
	Opacity      float32
	MatrixDirty  bool
	OpacityDirty bool
}

// NewRenderState returns a state with both flags set, for the first draw
// into a fresh uniform buffer.
func NewRenderState(m uniform.Mat4, opacity float32) RenderState {
	return RenderState{Matrix: m, Opacity: opacity, MatrixDirty: true, OpacityDirty: true}
}

// Material is the uniform data of one draw of a chart kind.
type Material interface {
	Kind() Kind

	// UpdateUniformData writes whatever changed into dst, the CPU copy of
	// the kind's uniform block, and reports whether anything was written.
	// Material fields are written when m differs from old, the material
	// drawn into dst last time, or when m is marked dirty.
	UpdateUniformData(state RenderState, dst []byte, old Material) bool
}

func writeState(l *uniform.Layout, matrix, opacity uniform.Handle, state RenderState, dst []byte) bool {
	changed := false
	if state.MatrixDirty {
		l.WriteMat4(dst, matrix, state.Matrix)
		changed = true
	}
	if state.OpacityDirty {
		l.WriteFloat(dst, opacity, state.Opacity)
		changed = true
	}
	return changed
}
