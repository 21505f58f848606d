// SPDX-License-Identifier: MIT

package projection

import "github.com/go-gl/mathgl/mgl32"

// ViewVolume is the camera volume a Transform projects through.
// Implementations own the volume; Transform only reads from it.
//
// All matrices are in row-vector layout: a point p maps to p·M, so the
// translation lives in row 3 and composing "A then B" is A·B.
type ViewVolume interface {
	// ProjectToScreen maps a scene-space point to normalized screen space:
	// x and y in the volume's screen convention plus a normalized depth.
	// Implementations may recompute their full matrix on each call.
	ProjectToScreen(p mgl32.Vec3) mgl32.Vec3

	// Matrices returns the affine (camera) and projection matrices separately.
	Matrices() (affine, proj mgl32.Mat4)

	// Matrix returns the combined view-projection matrix (affine·proj).
	Matrix() mgl32.Mat4

	// NearDist returns the distance from the eye to the near clipping plane.
	NearDist() float32
}
