// SPDX-License-Identifier: MIT
// Package projection: forward, inverse and composed-matrix kernels.

package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Project maps a scene-space point to normalized screen space.
//
// Implementation:
//   - Stage 1: apply the auxiliary transform (homogeneous, in double precision)
//     when one is set; the identity is skipped entirely.
//   - Stage 2: delegate to ViewVolume.ProjectToScreen.
//
// Returns (x, y, depth) in the volume's screen convention, normally [0,1].
//
// Complexity:
//   - O(1), but not free: the volume recomputes its full projection matrix on
//     every call. For large batches prefer ProjectionMatrix once and apply it.
func (t *Transform) Project(p mgl32.Vec3) mgl32.Vec3 {
	if t.hasTransform {
		p = vec3To32(mgl64.TransformCoordinate(vec3To64(p), t.aux))
	}

	return t.vv.ProjectToScreen(p)
}

// Project64 is the double-precision form of Project. The point is narrowed to
// float, projected, and widened back; no guarantee beyond the float round-trip.
func (t *Transform) Project64(p mgl64.Vec3) mgl64.Vec3 {
	return vec3To64(t.Project(vec3To32(p)))
}

// Inverse maps a normalized screen point (x, y, depth), in the same convention
// Project returns, back to scene space.
//
// Implementation:
//   - Stage 1: remap each component from [0,1] to clip space [-1,1] (2v - 1).
//   - Stage 2: scale the columns of the volume's view-projection matrix to
//     unit magnitude, invert it, undo the scaling and apply the result with a
//     homogeneous divide. Only the direction of the homogeneous result
//     matters, so the size of the volume does not affect invertibility.
//
// Only the matrix-inverse strategy is implemented. The auxiliary transform is
// not undone: the result is in the volume's scene space.
//
// Errors:
//   - ErrNonInvertible   (the view-projection matrix is singular).
//   - ErrPointAtInfinity (the homogeneous w of the result is zero).
func (t *Transform) Inverse(p mgl32.Vec3) (mgl32.Vec3, error) {
	q, err := t.inverse(vec3To64(p))
	if err != nil {
		return mgl32.Vec3{}, projectionErrorf(opInverse, err)
	}

	return vec3To32(q), nil
}

// Inverse64 is the double-precision form of Inverse, with the same float
// round-trip as Project64.
func (t *Transform) Inverse64(p mgl64.Vec3) (mgl64.Vec3, error) {
	q, err := t.inverse(vec3To64(vec3To32(p)))
	if err != nil {
		return mgl64.Vec3{}, projectionErrorf(opInverse64, err)
	}

	return vec3To64(vec3To32(q)), nil
}

func (t *Transform) inverse(p mgl64.Vec3) (mgl64.Vec3, error) {
	m, colScale, ok := equilibrate(transposeTo64(t.vv.Matrix()))
	if !ok || !invertible(m.Det()) {
		return mgl64.Vec3{}, ErrNonInvertible
	}

	// inv(M) = E·inv(M·E) for the column scaling E.
	h := m.Inv().Mul4x1(ScreenToClip(p).Vec4(1))
	for i := range h {
		h[i] *= colScale[i]
	}
	if h[3] == 0 || math.IsNaN(h[3]) {
		return mgl64.Vec3{}, ErrPointAtInfinity
	}

	return h.Vec3().Mul(1 / h[3]), nil
}

// equilibrate scales every column of m to a largest magnitude of 1 and
// returns the scaled matrix with the per-column factors. Large volumes have
// tiny linear terms next to a unit w column, which drives the raw
// determinant under the absolute threshold of Inv while the matrix stays
// well conditioned. ok is false when a column is zero or not finite.
func equilibrate(m mgl64.Mat4) (scaled mgl64.Mat4, colScale mgl64.Vec4, ok bool) {
	var (
		col  mgl64.Vec4
		peak float64
		i, j int
	)
	for j = 0; j < 4; j++ {
		col = m.Col(j)
		peak = 0
		for i = 0; i < 4; i++ {
			peak = math.Max(peak, math.Abs(col[i]))
		}
		if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
			return mgl64.Mat4{}, mgl64.Vec4{}, false
		}
		colScale[j] = 1 / peak
		m.SetCol(j, col.Mul(colScale[j]))
	}

	return m, colScale, true
}

// invertible reports whether det is usable as a divisor. It mirrors the
// threshold mgl64.Mat4.Inv applies, so a true result never yields the zero
// matrix Inv returns for singular input.
func invertible(det float64) bool {
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return false
	}

	return !mgl64.FloatEqual(det, 0)
}

// ProjectionMatrix returns a single matrix M such that dehomogenizing M·(p,1)
// yields Project(p) for every scene point p.
//
// Implementation:
//   - Stage 1: fetch affine and projection matrices and compose affine·proj in
//     the volume's row-vector layout (affine applied first).
//   - Stage 2: transpose into column-vector layout while copying out.
//   - Stage 3: right-multiply the auxiliary transform, if set, so it acts on
//     the point before the camera.
//   - Stage 4: scale by ½ then translate by ½ on all axes ([-1,1] → [0,1]).
//
// Complexity: O(1); three 4×4 products.
func (t *Transform) ProjectionMatrix() mgl64.Mat4 {
	affine, proj := t.vv.Matrices()
	mat := transposeTo64(affine.Mul4(proj))

	if t.hasTransform {
		mat = mat.Mul4(t.aux)
	}

	return clipToScreenMatrix().Mul4(mat)
}
