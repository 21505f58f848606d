// Package viewvolume provides concrete camera view volumes: a perspective
// frustum and an orthographic box, both looking from an eye point at a target.
//
// A Volume satisfies projection.ViewVolume. It hands out its matrices in
// row-vector layout (p' = p·M), the transpose of mathgl's column-vector
// matrices; projection.Transform transposes them back on copy-out.
//
// Construction uses functional options:
//
//	vv, err := viewvolume.NewPerspective(
//		viewvolume.WithEye(mgl32.Vec3{0, 0, 10}),
//		viewvolume.WithFovY(mgl32.DegToRad(60)),
//		viewvolume.WithNearFar(0.5, 200),
//	)
//
// A Volume is immutable after construction and safe for concurrent use.
package viewvolume
