// SPDX-License-Identifier: MIT

package viewvolume

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind distinguishes perspective frusta from orthographic boxes.
type Kind int

const (
	// Perspective volumes shrink with distance; near must be > 0.
	Perspective Kind = iota

	// Orthographic volumes keep a constant cross-section.
	Orthographic
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Volume is a camera view volume with precomputed affine (camera) and
// projection matrices, stored in row-vector layout.
type Volume struct {
	kind   Kind
	cfg    volumeConfig
	affine mgl32.Mat4 // world → eye, row-vector layout
	proj   mgl32.Mat4 // eye → clip, row-vector layout
}

// NewPerspective builds a perspective frustum from the given options.
//
// Errors:
//   - ErrBadVolume if near <= 0, far <= near, eye == target, or up is
//     parallel to the view direction.
func NewPerspective(opts ...Option) (*Volume, error) {
	return build(Perspective, opts)
}

// NewOrthographic builds an orthographic box of height WithHeight and width
// height·aspect.
//
// Errors:
//   - ErrBadVolume if far <= near, eye == target, or up is parallel to the
//     view direction.
func NewOrthographic(opts ...Option) (*Volume, error) {
	return build(Orthographic, opts)
}

func build(kind Kind, opts []Option) (*Volume, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(kind, cfg); err != nil {
		return nil, err
	}

	view := mgl32.LookAtV(cfg.eye, cfg.target, cfg.up)

	var proj mgl32.Mat4
	switch kind {
	case Orthographic:
		halfH := cfg.height / 2
		halfW := halfH * cfg.aspect
		proj = mgl32.Ortho(-halfW, halfW, -halfH, halfH, cfg.near, cfg.far)
	default:
		proj = mgl32.Perspective(cfg.fovy, cfg.aspect, cfg.near, cfg.far)
	}

	// mathgl builds column-vector matrices; store their transposes.
	return &Volume{
		kind:   kind,
		cfg:    cfg,
		affine: view.Transpose(),
		proj:   proj.Transpose(),
	}, nil
}

func validate(kind Kind, cfg volumeConfig) error {
	if kind == Perspective && cfg.near <= 0 {
		return fmt.Errorf("%w: perspective near %g must be > 0", ErrBadVolume, cfg.near)
	}
	if cfg.far <= cfg.near {
		return fmt.Errorf("%w: far %g must exceed near %g", ErrBadVolume, cfg.far, cfg.near)
	}
	dir := cfg.target.Sub(cfg.eye)
	if dir.LenSqr() == 0 {
		return fmt.Errorf("%w: eye coincides with target", ErrBadVolume)
	}
	if dir.Cross(cfg.up).LenSqr() == 0 {
		return fmt.Errorf("%w: up is parallel to view direction", ErrBadVolume)
	}

	return nil
}

// Kind reports whether v is perspective or orthographic.
func (v *Volume) Kind() Kind { return v.kind }

// Eye returns the camera position.
func (v *Volume) Eye() mgl32.Vec3 { return v.cfg.eye }

// NearDist returns the distance to the near clipping plane.
func (v *Volume) NearDist() float32 { return v.cfg.near }

// FarDist returns the distance to the far clipping plane.
func (v *Volume) FarDist() float32 { return v.cfg.far }

// Matrices returns the affine and projection matrices in row-vector layout.
func (v *Volume) Matrices() (affine, proj mgl32.Mat4) {
	return v.affine, v.proj
}

// Matrix returns the combined view-projection matrix affine·proj in
// row-vector layout. It is recomputed on every call.
func (v *Volume) Matrix() mgl32.Mat4 {
	return v.affine.Mul4(v.proj)
}

// ProjectToScreen maps p to normalized screen space: p·Matrix() with a
// homogeneous divide, then (c+1)/2 on each axis. Points on the eye plane of a
// perspective volume have w = 0 and project to ±Inf.
func (v *Volume) ProjectToScreen(p mgl32.Vec3) mgl32.Vec3 {
	// Row-vector p·M equals column-vector Mᵀ·p.
	clip := mgl32.TransformCoordinate(p, v.Matrix().Transpose())

	return mgl32.Vec3{
		(clip[0] + 1) / 2,
		(clip[1] + 1) / 2,
		(clip[2] + 1) / 2,
	}
}

// String implements fmt.Stringer.
func (v *Volume) String() string {
	return fmt.Sprintf("%s volume eye=%v target=%v near=%g far=%g",
		v.kind, v.cfg.eye, v.cfg.target, v.cfg.near, v.cfg.far)
}
