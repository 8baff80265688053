// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniform

import "github.com/gogpu/gg"

// Vec2 matches a WGSL vec2<f32>.
type Vec2 struct {
	X, Y float32
}

// Vec3 matches a WGSL vec3<f32>.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 matches a WGSL vec4<f32>.
type Vec4 struct {
	X, Y, Z, W float32
}

// ColorVec4 converts a color to the R, G, B, A components a shader reads
// as vec4<f32>.
func ColorVec4(c gg.RGBA) Vec4 {
	return Vec4{X: float32(c.R), Y: float32(c.G), Z: float32(c.B), W: float32(c.A)}
}

// Mat4 is a 4x4 matrix stored column-major, the order mat4x4<f32> expects:
// element (row r, column c) lives at index c*4+r.
type Mat4 [16]float32

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Transform applies m to the point (x, y, 0, 1) and returns the resulting
// x and y.
func (m Mat4) Transform(x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// Mat4FromAffine embeds a 2D affine transform in a 4x4 matrix, leaving z
// untouched.
func Mat4FromAffine(a gg.Matrix) Mat4 {
	return Mat4{
		float32(a.A), float32(a.D), 0, 0,
		float32(a.B), float32(a.E), 0, 0,
		0, 0, 1, 0,
		float32(a.C), float32(a.F), 0, 1,
	}
}

// Ortho returns an orthographic projection mapping the box
// [left,right] x [bottom,top] x [near,far] onto clip space with depth in
// [0,1].
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity4()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = 1 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -near / (far - near)
	return m
}
