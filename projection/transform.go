// SPDX-License-Identifier: MIT

package projection

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform converts between scene space and normalized screen space through
// a fixed ViewVolume and an optional auxiliary transform.
//
// The zero value is not usable; construct with New.
type Transform struct {
	vv           ViewVolume // read-only for the lifetime of the Transform
	aux          mgl64.Mat4 // auxiliary transform, column-vector layout
	hasTransform bool       // aux != identity; gates the multiply in Project
}

// New returns a Transform over vv with the identity auxiliary transform.
//
// Errors:
//   - ErrNilViewVolume if vv is nil.
//
// Complexity: O(1).
func New(vv ViewVolume) (*Transform, error) {
	if vv == nil {
		return nil, projectionErrorf(opNew, ErrNilViewVolume)
	}

	return &Transform{
		vv:  vv,
		aux: mgl64.Ident4(),
	}, nil
}

// ViewVolume returns the volume this Transform projects through.
func (t *Transform) ViewVolume() ViewVolume {
	return t.vv
}

// SetTransform replaces the auxiliary transform applied to input points before
// projection. The "has transform" flag is recomputed with exact element-wise
// equality against the identity; no tolerance is applied, so a matrix that is
// merely close to identity is still multiplied in.
//
// SetTransform is not safe to call concurrently with other methods on t.
func (t *Transform) SetTransform(m mgl64.Mat4) {
	t.aux = m
	t.hasTransform = m != mgl64.Ident4()
}

// AuxTransform returns the current auxiliary transform and whether it is
// applied (false when it equals the identity).
func (t *Transform) AuxTransform() (mgl64.Mat4, bool) {
	return t.aux, t.hasTransform
}
