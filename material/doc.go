// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package material holds the per-kind uniform data of chart shaders.
//
// Each chart kind (bar, pie, line) has a Material implementation and a
// writer: a [uniform.Layout] mirroring the kind's WGSL uniform block plus
// the handles of its fields. Writers are built once, on first use, and
// live for the rest of the process. They are shared by every material of
// their kind.
//
// Every kind is registered at init with its embedded WGSL source, so a
// renderer can look up the shader and uniform block size of a kind with
// [Lookup] and compile it with [CompileSPIRV].
package material
