// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	_ "embed"

	"github.com/gogpu/charts/uniform"
)

// Embedded WGSL shader sources.

//go:embed shaders/bar.wgsl
var barShaderSource string

//go:embed shaders/pie.wgsl
var pieShaderSource string

//go:embed shaders/line.wgsl
var lineShaderSource string

func init() {
	Register(KindBar, ShaderInfo{
		Label:  "chart-bar",
		Source: barShaderSource,
		Layout: func() *uniform.Layout { return BarLayout().Layout },
	})
	Register(KindPie, ShaderInfo{
		Label:  "chart-pie",
		Source: pieShaderSource,
		Layout: func() *uniform.Layout { return PieLayout().Layout },
	})
	Register(KindLine, ShaderInfo{
		Label:  "chart-line",
		Source: lineShaderSource,
		Layout: func() *uniform.Layout { return LineLayout().Layout },
	})
}
