// SPDX-License-Identifier: MIT

package projection

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// half is the scale and offset of the clip → screen remap.
const half = 0.5

// ClipToScreen remaps a clip-space point from [-1,1] to [0,1] on every axis.
func ClipToScreen(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0]*half + half, v[1]*half + half, v[2]*half + half}
}

// ScreenToClip remaps a screen-space point from [0,1] to [-1,1] on every axis
// (2v - 1 per component).
func ScreenToClip(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{2*v[0] - 1, 2*v[1] - 1, 2*v[2] - 1}
}

// clipToScreenMatrix returns Translate(½)·Scale(½): scale first, then translate.
// The two do not commute, so the order here is load-bearing.
func clipToScreenMatrix() mgl64.Mat4 {
	scale := mgl64.Scale3D(half, half, half)
	move := mgl64.Translate3D(half, half, half)

	return move.Mul4(scale)
}

// vec3To64 widens a float point.
func vec3To64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// vec3To32 narrows a double point; precision loss is accepted.
func vec3To32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// transposeTo64 copies a row-vector-layout volume matrix into a column-vector
// mgl64 matrix, swapping indices entry by entry: out[i][j] = m[j][i].
func transposeTo64(m mgl32.Mat4) mgl64.Mat4 {
	var (
		out  mgl64.Mat4
		i, j int
	)
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out.Set(i, j, float64(m.At(j, i)))
		}
	}

	return out
}
