// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu uploads the uniform data of chart materials to the GPU.
//
// A [UniformBuffer] owns, for one chart kind, the shader module, the bind
// group layout with the uniform block at binding 0, a uniform buffer sized
// to the kind's block and the bind group pointing at it. Materials write
// into a CPU copy of the block; only changed blocks are uploaded.
//
// The device and queue come from the host application, usually through a
// gpucontext.DeviceProvider:
//
//	device, queue, err := gpu.FromProvider(provider)
//	if err != nil {
//	    return err
//	}
//	ub, err := gpu.NewUniformBuffer(device, queue, material.KindBar)
//	if err != nil {
//	    return err
//	}
//	defer ub.Destroy()
//	ub.Update(material.NewRenderState(m, 1), bar)
package gpu

import "errors"

var (
	// ErrNilDevice is returned when no device or queue is available.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrNotHalProvider is returned when a device provider does not expose
	// its HAL device and queue.
	ErrNotHalProvider = errors.New("gpu: provider does not expose HAL types")
)
