// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by device providers that share their HAL
// objects, such as gogpu's application.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// FromProvider returns the HAL device and queue of a host application.
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue. The caller does not own them and must not
// destroy them.
func FromProvider(provider gpucontext.DeviceProvider) (hal.Device, hal.Queue, error) {
	if provider == nil {
		return nil, nil, ErrNilDevice
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNotHalProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNotHalProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNotHalProvider)
	}
	return device, queue, nil
}
