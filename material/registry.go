// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"slices"
	"sync"

	"github.com/gogpu/charts/uniform"
)

// ShaderInfo describes the shader of a kind.
type ShaderInfo struct {
	// Label names GPU objects created for the kind.
	Label string
	// Source is the WGSL source, with vs_main and fs_main entry points and
	// the uniform block at group 0, binding 0.
	Source string
	// Layout returns the kind's process-wide uniform layout.
	Layout func() *uniform.Layout
}

// UniformSize returns the size of the kind's uniform buffer, rounded up
// to 16 bytes. It is 0 for a ShaderInfo without a layout.
func (s ShaderInfo) UniformSize() uint32 {
	if s.Layout == nil {
		return 0
	}
	return s.Layout().AlignedSize(uniform.AlignVec4)
}

var (
	registryMu sync.RWMutex
	shaders    = make(map[Kind]ShaderInfo)
)

// Register registers the shader of a kind, replacing any earlier one.
// The built-in kinds are registered from init.
func Register(kind Kind, info ShaderInfo) {
	registryMu.Lock()
	defer registryMu.Unlock()
	shaders[kind] = info
}

// Unregister removes a kind from the registry.
// This is useful for testing.
func Unregister(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(shaders, kind)
}

// Lookup returns the shader registered for kind.
func Lookup(kind Kind) (ShaderInfo, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	info, ok := shaders[kind]
	return info, ok
}

// Kinds returns the registered kinds in sorted order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]Kind, 0, len(shaders))
	for k := range shaders {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
