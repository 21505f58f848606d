// Package projection maps scene-space points to normalized screen space and back
// through a caller-supplied view volume.
//
// 🚀 What is a projection transform?
//
//	A camera view volume (a perspective frustum or an orthographic box) defines
//	how scene points land on the screen. Transform wraps such a volume and
//	exposes three views of the same mapping:
//	  • Project:          point → (x, y, depth) in [0,1]
//	  • Inverse:          (x, y, depth) in [0,1] → point
//	  • ProjectionMatrix: one 4×4 matrix equivalent to Project for every point
//
// ✨ Key features:
//   - optional auxiliary (model) transform applied before projection;
//     the identity transform is detected exactly and skipped
//   - float (mgl32) and double (mgl64) entry points with identical semantics;
//     double calls round-trip through float precision
//   - explicit ErrNonInvertible instead of a garbage point when the
//     view-projection matrix is singular
//
// Conventions:
//
//	View volumes hand out matrices in row-vector layout (v' = v·M).
//	Everything returned by this package uses the column-vector layout of
//	mathgl (v' = M·v, translation in column 3). ProjectionMatrix performs
//	the transpose while copying out, before any further composition.
//
// ⚙️ Usage:
//
//	vv, _ := viewvolume.NewPerspective(viewvolume.WithEye(mgl32.Vec3{0, 0, 10}))
//	pt, _ := projection.New(vv)
//	screen := pt.Project(mgl32.Vec3{1, 2, 3})
//	back, err := pt.Inverse(screen)
//
// Concurrency:
//
//	Transform has no internal locking. Concurrent Project/Inverse/ProjectionMatrix
//	calls are safe; SetTransform must not race with them on the same instance.
//
// Complexity:
//
//	Every operation is O(1): a handful of 4×4 products and at most one inversion.
package projection
