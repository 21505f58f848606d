// SPDX-License-Identifier: MIT
// Package projection_test contains test fixtures.
//
// Purpose:
//   • Provide fake view volumes with hand-picked matrices (identity, singular,
//     projective) so kernels can be checked against exact expectations.
//   • Provide real perspective/orthographic volumes for property tests.

package projection_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viewproj/projection"
	"github.com/katalvlaran/viewproj/viewvolume"
)

// fakeVolume is a ViewVolume built straight from row-vector matrices.
// ProjectToScreen follows the same contract as viewvolume.Volume.
type fakeVolume struct {
	affine, proj mgl32.Mat4
	near         float32
}

func (f fakeVolume) Matrices() (mgl32.Mat4, mgl32.Mat4) { return f.affine, f.proj }
func (f fakeVolume) Matrix() mgl32.Mat4                 { return f.affine.Mul4(f.proj) }
func (f fakeVolume) NearDist() float32                  { return f.near }

func (f fakeVolume) ProjectToScreen(p mgl32.Vec3) mgl32.Vec3 {
	c := mgl32.TransformCoordinate(p, f.Matrix().Transpose())
	return mgl32.Vec3{(c[0] + 1) / 2, (c[1] + 1) / 2, (c[2] + 1) / 2}
}

// identityVolume makes scene space equal clip space.
func identityVolume() fakeVolume {
	return fakeVolume{affine: mgl32.Ident4(), proj: mgl32.Ident4(), near: 1}
}

// singularVolume collapses every point onto the plane z = 0.
func singularVolume() fakeVolume {
	return fakeVolume{affine: mgl32.Ident4(), proj: mgl32.Scale3D(1, 1, 0), near: 1}
}

// swapZWVolume swaps z and w; it is its own inverse, so screen depth ½
// (clip z = 0) inverts to a point with w = 0.
func swapZWVolume() fakeVolume {
	swap := mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}
	return fakeVolume{affine: mgl32.Ident4(), proj: swap, near: 1}
}

// MustPerspective builds a perspective volume looking at the origin from
// (2, 3, 15), or fails the test.
func MustPerspective(t testing.TB) *viewvolume.Volume {
	t.Helper()
	vv, err := viewvolume.NewPerspective(
		viewvolume.WithEye(mgl32.Vec3{2, 3, 15}),
		viewvolume.WithFovY(mgl32.DegToRad(50)),
		viewvolume.WithAspect(1.6),
		viewvolume.WithNearFar(1, 60),
	)
	require.NoError(t, err)

	return vv
}

// MustOrthographic builds an orthographic volume, or fails the test.
func MustOrthographic(t testing.TB) *viewvolume.Volume {
	t.Helper()
	vv, err := viewvolume.NewOrthographic(
		viewvolume.WithEye(mgl32.Vec3{-4, 2, 8}),
		viewvolume.WithHeight(12),
		viewvolume.WithAspect(1.25),
		viewvolume.WithNearFar(0.5, 40),
	)
	require.NoError(t, err)

	return vv
}

// MustTransform wraps projection.New with a fatal on error.
func MustTransform(t testing.TB, vv projection.ViewVolume) *projection.Transform {
	t.Helper()
	pt, err := projection.New(vv)
	require.NoError(t, err)

	return pt
}

// scenePoints are all inside both MustPerspective and MustOrthographic.
var scenePoints = []mgl32.Vec3{
	{0, 0, 0},
	{1, 1, 1},
	{-1.5, 0.5, 2},
	{2, -1, -3},
	{0.25, -0.75, 4},
	{-2, 2, -1},
}

// nonTrivialAux is a non-uniform scale, then a rotation, then a translation.
func nonTrivialAux() mgl64.Mat4 {
	return mgl64.Translate3D(0.5, -0.25, 1).
		Mul4(mgl64.HomogRotate3DY(math.Pi / 7)).
		Mul4(mgl64.Scale3D(1.2, 0.8, 1.1))
}

// dehomogenize applies m to (p, 1) and divides by w.
func dehomogenize(m mgl64.Mat4, p mgl32.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}, m)
}

// AssertVec3InDelta fails the test when any component differs by more than delta.
func AssertVec3InDelta(t *testing.T, want, got mgl64.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(want[i]-got[i]) > delta {
			t.Fatalf("component %d: want %.7g, got %.7g (delta %.1e) %v", i, want[i], got[i], delta, msgAndArgs)
		}
	}
}

func widen(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
