// SPDX-License-Identifier: MIT
// Package projection: sentinel error set.
// Callers match these with errors.Is; facades wrap them with an operation tag
// via projectionErrorf so the message reads "<Op>: projection: ...".

package projection

import (
	"errors"
	"fmt"
)

var (
	// ErrNilViewVolume is returned by New when no view volume is supplied.
	ErrNilViewVolume = errors.New("projection: nil view volume")

	// ErrNonInvertible signals that the view-projection matrix of the volume is
	// singular, so screen coordinates cannot be mapped back to scene space.
	ErrNonInvertible = errors.New("projection: view-projection matrix is not invertible")

	// ErrPointAtInfinity signals that an inverse-projected point has a zero
	// homogeneous coordinate and therefore no finite scene-space position.
	ErrPointAtInfinity = errors.New("projection: point maps to infinity")
)

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opInverse   = "Inverse"
	opInverse64 = "Inverse64"
)

// projectionErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func projectionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
