// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/material"
)

// UniformBuffer holds the GPU objects that bind the uniform block of one
// chart kind.
//
// UniformBuffer is safe for concurrent use.
type UniformBuffer struct {
	mu     sync.Mutex
	device hal.Device
	queue  hal.Queue
	kind   material.Kind

	shader     hal.ShaderModule
	layout     hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	buffer     hal.Buffer
	bindGroup  hal.BindGroup

	// shadow is the CPU copy of the uniform block.
	shadow []byte
	// last is the material written into shadow most recently.
	last material.Material
}

// NewUniformBuffer creates the shader module, bind group layout, pipeline
// layout, uniform buffer and bind group of kind on device.
func NewUniformBuffer(device hal.Device, queue hal.Queue, kind material.Kind) (*UniformBuffer, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	info, ok := material.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("gpu: %w: %q", material.ErrUnknownKind, kind)
	}
	if info.Source == "" {
		return nil, fmt.Errorf("gpu: %w: %q", material.ErrEmptyShader, kind)
	}

	u := &UniformBuffer{
		device: device,
		queue:  queue,
		kind:   kind,
		shadow: make([]byte, info.UniformSize()),
	}
	if err := u.create(info); err != nil {
		u.Destroy()
		return nil, err
	}

	charts.Logger().Debug("gpu: uniform buffer created",
		"kind", string(kind), "size", len(u.shadow))
	return u, nil
}

func (u *UniformBuffer) create(info material.ShaderInfo) error {
	var err error
	u.shader, err = u.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  info.Label + "_shader",
		Source: hal.ShaderSource{WGSL: info.Source},
	})
	if err != nil {
		return fmt.Errorf("gpu: compile %s shader: %w", u.kind, err)
	}

	u.layout, err = u.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: info.Label + "_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create uniform layout: %w", err)
	}

	u.pipeLayout, err = u.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            info.Label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{u.layout},
	})
	if err != nil {
		return fmt.Errorf("gpu: create pipeline layout: %w", err)
	}

	u.buffer, err = u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: info.Label + "_uniform",
		Size:  uint64(len(u.shadow)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create uniform buffer: %w", err)
	}

	u.bindGroup, err = u.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  info.Label + "_bind",
		Layout: u.layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: u.buffer.NativeHandle(), Offset: 0, Size: uint64(len(u.shadow)),
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create bind group: %w", err)
	}
	return nil
}

// Update lets m write its uniform data into the CPU copy of the block and
// uploads the block if anything changed. It reports whether an upload
// happened. Materials of another kind are ignored.
func (u *UniformBuffer) Update(state material.RenderState, m material.Material) bool {
	if m == nil {
		return false
	}
	if m.Kind() != u.kind {
		charts.Logger().Warn("gpu: material kind does not match uniform buffer",
			"buffer", string(u.kind), "material", string(m.Kind()))
		return false
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.buffer == nil {
		return false
	}

	changed := m.UpdateUniformData(state, u.shadow, u.last)
	u.last = m
	if changed {
		u.queue.WriteBuffer(u.buffer, 0, u.shadow)
	}
	return changed
}

// Kind returns the chart kind of the buffer.
func (u *UniformBuffer) Kind() material.Kind {
	return u.kind
}

// Size returns the size of the uniform block in bytes.
func (u *UniformBuffer) Size() int {
	return len(u.shadow)
}

// Bytes returns a copy of the uniform block as last uploaded.
func (u *UniformBuffer) Bytes() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]byte, len(u.shadow))
	copy(out, u.shadow)
	return out
}

// ShaderModule returns the kind's shader module.
func (u *UniformBuffer) ShaderModule() hal.ShaderModule {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.shader
}

// BindGroupLayout returns the layout of group 0.
func (u *UniformBuffer) BindGroupLayout() hal.BindGroupLayout {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.layout
}

// PipelineLayout returns a pipeline layout with the uniform group at 0.
func (u *UniformBuffer) PipelineLayout() hal.PipelineLayout {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.pipeLayout
}

// BindGroup returns the bind group to set at group 0 when drawing.
func (u *UniformBuffer) BindGroup() hal.BindGroup {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.bindGroup
}

// Destroy releases all GPU objects. Safe to call multiple times. The
// device and queue belong to the caller and are left alone.
func (u *UniformBuffer) Destroy() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.bindGroup != nil {
		u.device.DestroyBindGroup(u.bindGroup)
		u.bindGroup = nil
	}
	if u.buffer != nil {
		u.device.DestroyBuffer(u.buffer)
		u.buffer = nil
	}
	if u.pipeLayout != nil {
		u.device.DestroyPipelineLayout(u.pipeLayout)
		u.pipeLayout = nil
	}
	if u.layout != nil {
		u.device.DestroyBindGroupLayout(u.layout)
		u.layout = nil
	}
	if u.shader != nil {
		u.device.DestroyShaderModule(u.shader)
		u.shader = nil
	}
	u.last = nil
}
