// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider without HAL access.
type mockProvider struct{}

func (m *mockProvider) Device() gpucontext.Device   { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue     { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// halMockProvider also shares its HAL device and queue.
type halMockProvider struct {
	mockProvider
	device any
	queue  any
}

func (m *halMockProvider) HalDevice() any { return m.device }
func (m *halMockProvider) HalQueue() any  { return m.queue }

func TestFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	gotDevice, gotQueue, err := FromProvider(&halMockProvider{device: device, queue: queue})
	if err != nil {
		t.Fatalf("FromProvider: %v", err)
	}
	if gotDevice != device || gotQueue != queue {
		t.Error("FromProvider returned other objects than the provider's")
	}

	ub, err := NewUniformBuffer(gotDevice, gotQueue, "bar")
	if err != nil {
		t.Fatalf("NewUniformBuffer with provider device: %v", err)
	}
	ub.Destroy()
}

func TestFromProviderErrors(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		want     error
	}{
		{"nil provider", nil, ErrNilDevice},
		{"no HAL access", &mockProvider{}, ErrNotHalProvider},
		{"wrong device type", &halMockProvider{device: "device", queue: nil}, ErrNotHalProvider},
		{"missing queue", &halMockProvider{device: device, queue: nil}, ErrNotHalProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := FromProvider(tt.provider); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
