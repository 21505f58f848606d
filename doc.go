// Package viewproj maps 3D scene points to normalized screen coordinates and
// back through a camera view volume.
//
// 🚀 What is viewproj?
//
//	A small, pure-Go toolkit around one numeric core:
//		• projection/  — Transform: forward and inverse projection plus a
//		                  composed 4×4 matrix equivalent to the forward call
//		• viewvolume/  — perspective and orthographic camera volumes
//		• tessellate/  — simple-polygon triangulation into index triples
//		• selection/   — name-based selection sync for item views
//		• cmd/viewproj — command-line projector over stdin points
//
// ✨ Why viewproj?
//
//   - Explicit conventions: volumes speak row-vector layout, projection speaks
//     mathgl's column-vector layout; the transpose happens in one place
//   - No silent garbage: a singular view-projection matrix yields
//     projection.ErrNonInvertible
//   - Float and double entry points with identical semantics
//
// Quick ASCII picture:
//
//	scene ──aux──▶ camera ──proj──▶ clip [-1,1] ──½·+½──▶ screen [0,1]
//
//	go get github.com/katalvlaran/viewproj
package viewproj
