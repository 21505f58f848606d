// SPDX-License-Identifier: MIT

package viewvolume

import "errors"

// ErrBadVolume is returned when the requested volume is geometrically
// meaningless (empty depth range, eye on the target, up along the view axis,
// non-positive near plane for a perspective frustum).
var ErrBadVolume = errors.New("viewvolume: invalid view volume")
