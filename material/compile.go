// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/charts"
)

// CompileSPIRV compiles the WGSL shader of kind to SPIR-V words.
func CompileSPIRV(kind Kind) ([]uint32, error) {
	info, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if info.Source == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyShader, kind)
	}

	spirvBytes, err := naga.Compile(info.Source)
	if err != nil {
		return nil, fmt.Errorf("material: compile %s shader: %w", kind, err)
	}

	charts.Logger().Info("material: shader compiled", "kind", string(kind), "bytes", len(spirvBytes))
	return spirvWords(spirvBytes), nil
}

// spirvWords converts SPIR-V bytes to little-endian 32-bit words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words
}
