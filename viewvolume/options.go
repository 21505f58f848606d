// SPDX-License-Identifier: MIT
// Package: viewproj/viewvolume
//
// options.go — functional options for volume constructors.
//
// Contract:
//   • Options are functional (type Option func(*volumeConfig)).
//   • Option constructors PANIC on meaningless scalar inputs (NaN, Inf,
//     non-positive sizes). Constructors return ErrBadVolume for invalid
//     combinations and never panic.

package viewvolume

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Defaults applied before options.
const (
	DefaultFovY   = math.Pi / 4 // 45° vertical field of view, radians
	DefaultAspect = 1.0
	DefaultNear   = 1.0
	DefaultFar    = 100.0
	DefaultHeight = 2.0 // orthographic box height
)

// Option customizes a volume before its matrices are built.
type Option func(*volumeConfig)

// volumeConfig collects every parameter a constructor needs.
type volumeConfig struct {
	eye, target, up mgl32.Vec3
	fovy, aspect    float32
	near, far       float32
	height          float32
}

func defaultConfig() volumeConfig {
	return volumeConfig{
		eye:    mgl32.Vec3{0, 0, 10},
		target: mgl32.Vec3{0, 0, 0},
		up:     mgl32.Vec3{0, 1, 0},
		fovy:   DefaultFovY,
		aspect: DefaultAspect,
		near:   DefaultNear,
		far:    DefaultFar,
		height: DefaultHeight,
	}
}

// WithEye sets the camera position. Panics on non-finite components.
func WithEye(eye mgl32.Vec3) Option {
	mustFiniteVec("WithEye", eye)
	return func(c *volumeConfig) {
		c.eye = eye
	}
}

// WithTarget sets the point the camera looks at. Panics on non-finite components.
func WithTarget(target mgl32.Vec3) Option {
	mustFiniteVec("WithTarget", target)
	return func(c *volumeConfig) {
		c.target = target
	}
}

// WithUp sets the camera up direction; it need not be normalized.
// Panics on a zero or non-finite vector.
func WithUp(up mgl32.Vec3) Option {
	mustFiniteVec("WithUp", up)
	if up.LenSqr() == 0 {
		panic("viewvolume: WithUp(zero vector)")
	}
	return func(c *volumeConfig) {
		c.up = up
	}
}

// WithFovY sets the vertical field of view in radians, 0 < fovy < π.
// Ignored by orthographic volumes.
func WithFovY(fovy float32) Option {
	mustFinite("WithFovY", fovy)
	if fovy <= 0 || fovy >= math.Pi {
		panic("viewvolume: WithFovY out of (0, π)")
	}
	return func(c *volumeConfig) {
		c.fovy = fovy
	}
}

// WithAspect sets width/height of the volume cross-section. Panics if aspect <= 0.
func WithAspect(aspect float32) Option {
	mustFinite("WithAspect", aspect)
	if aspect <= 0 {
		panic("viewvolume: WithAspect(<=0)")
	}
	return func(c *volumeConfig) {
		c.aspect = aspect
	}
}

// WithNearFar sets the clipping distances along the view axis. The pair is
// validated by the constructor, not here, since validity depends on the kind.
func WithNearFar(near, far float32) Option {
	mustFinite("WithNearFar", near)
	mustFinite("WithNearFar", far)
	return func(c *volumeConfig) {
		c.near = near
		c.far = far
	}
}

// WithHeight sets the height of an orthographic box. Panics if height <= 0.
// Ignored by perspective volumes.
func WithHeight(height float32) Option {
	mustFinite("WithHeight", height)
	if height <= 0 {
		panic("viewvolume: WithHeight(<=0)")
	}
	return func(c *volumeConfig) {
		c.height = height
	}
}

func mustFinite(name string, v float32) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("viewvolume: " + name + " with NaN or Inf")
	}
}

func mustFiniteVec(name string, v mgl32.Vec3) {
	for _, c := range v {
		mustFinite(name, c)
	}
}
