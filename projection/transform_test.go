// SPDX-License-Identifier: MIT
package projection_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viewproj/projection"
)

// TestNew_NilVolume ensures a nil volume is rejected with the sentinel.
func TestNew_NilVolume(t *testing.T) {
	t.Parallel()

	pt, err := projection.New(nil)
	require.ErrorIs(t, err, projection.ErrNilViewVolume)
	assert.Nil(t, pt)
	assert.Contains(t, err.Error(), "New: ")
}

// TestNew_StartsWithIdentity: fresh transforms carry the identity and skip it.
func TestNew_StartsWithIdentity(t *testing.T) {
	t.Parallel()

	vv := MustPerspective(t)
	pt := MustTransform(t, vv)

	aux, has := pt.AuxTransform()
	assert.False(t, has)
	assert.Equal(t, mgl64.Ident4(), aux)
	assert.Same(t, vv, pt.ViewVolume())
}

// TestSetTransform_IdentityFlag covers the exact-equality rule.
func TestSetTransform_IdentityFlag(t *testing.T) {
	t.Parallel()

	pt := MustTransform(t, MustPerspective(t))

	pt.SetTransform(nonTrivialAux())
	_, has := pt.AuxTransform()
	assert.True(t, has, "non-identity transform must be applied")

	pt.SetTransform(mgl64.Ident4())
	_, has = pt.AuxTransform()
	assert.False(t, has, "identity transform must restore the skip path")

	// Near-identity is not identity: no epsilon.
	almost := mgl64.Ident4()
	almost[12] = 1e-300
	pt.SetTransform(almost)
	got, has := pt.AuxTransform()
	assert.True(t, has)
	assert.Equal(t, almost, got)
}

// TestProject_IdentityTransformIsBitIdentical: setting the identity gives
// exactly the same output as never setting a transform.
func TestProject_IdentityTransformIsBitIdentical(t *testing.T) {
	t.Parallel()

	vv := MustPerspective(t)
	plain := MustTransform(t, vv)
	reset := MustTransform(t, vv)
	reset.SetTransform(nonTrivialAux())
	reset.SetTransform(mgl64.Ident4())

	for _, p := range scenePoints {
		assert.Equal(t, plain.Project(p), reset.Project(p), "point %v", p)
		assert.Equal(t, vv.ProjectToScreen(p), plain.Project(p), "point %v", p)
	}
	assert.Equal(t, plain.ProjectionMatrix(), reset.ProjectionMatrix())
}

// TestProject_AppliesAuxBeforeVolume: Project(p) with aux A equals the
// volume's projection of A·p.
func TestProject_AppliesAuxBeforeVolume(t *testing.T) {
	t.Parallel()

	vv := MustPerspective(t)
	pt := MustTransform(t, vv)
	aux := nonTrivialAux()
	pt.SetTransform(aux)

	for _, p := range scenePoints {
		moved := mgl64.TransformCoordinate(widen(p), aux)
		want := vv.ProjectToScreen(mgl32.Vec3{float32(moved[0]), float32(moved[1]), float32(moved[2])})
		assert.Equal(t, want, pt.Project(p), "point %v", p)
	}
}
