// SPDX-License-Identifier: MIT

package tessellate

import "github.com/go-gl/mathgl/mgl32"

// Sentinel terminates every index triple in the output.
const Sentinel = -1

// Tessellator holds the outline to triangulate. It does not copy the slice;
// callers must not mutate it while Tessellate runs.
type Tessellator struct {
	polygon []mgl32.Vec2
}

// New returns a Tessellator for the given outline.
func New(poly []mgl32.Vec2) *Tessellator {
	return &Tessellator{polygon: poly}
}

// Tessellate runs ear clipping over the outline and returns sentinel-terminated
// index triples. An outline with n ≥ 3 vertices always yields n−2 triangles.
//
// Implementation:
//   - Stage 1: determine orientation from the signed area (CCW when ≥ 0).
//   - Stage 2: repeatedly clip the first strictly convex vertex whose
//     triangle contains no other remaining vertex.
//   - Stage 3: when no proper ear exists (collinear runs, self-intersection),
//     clip the first remaining vertex anyway so the loop always shrinks.
func (t *Tessellator) Tessellate() []int {
	n := len(t.polygon)
	if n < 3 {
		return nil
	}

	var (
		ring = make([]int, n) // remaining vertex indices, in order
		out  = make([]int, 0, (n-2)*4)
		ccw  = signedArea(t.polygon) >= 0
		i    int
	)
	for i = 0; i < n; i++ {
		ring[i] = i
	}

	for len(ring) > 3 {
		ear := t.findEar(ring, ccw)
		if ear < 0 {
			ear = 0 // degenerate: no proper ear left
		}
		m := len(ring)
		prev, next := ring[(ear+m-1)%m], ring[(ear+1)%m]
		out = append(out, prev, ring[ear], next, Sentinel)
		ring = append(ring[:ear], ring[ear+1:]...)
	}

	return append(out, ring[0], ring[1], ring[2], Sentinel)
}

// findEar returns the position in ring of the first clippable vertex, or -1.
func (t *Tessellator) findEar(ring []int, ccw bool) int {
	m := len(ring)
	var a, b, c mgl32.Vec2
	for i := 0; i < m; i++ {
		a = t.polygon[ring[(i+m-1)%m]]
		b = t.polygon[ring[i]]
		c = t.polygon[ring[(i+1)%m]]

		turn := cross(a, b, c)
		if (ccw && turn <= 0) || (!ccw && turn >= 0) {
			continue // reflex or collinear
		}
		if t.anyInside(ring, i, a, b, c) {
			continue
		}

		return i
	}

	return -1
}

// anyInside reports whether a remaining vertex other than the triangle's own
// three lies inside or on the edge of triangle abc.
func (t *Tessellator) anyInside(ring []int, at int, a, b, c mgl32.Vec2) bool {
	m := len(ring)
	for j := 0; j < m; j++ {
		if j == at || j == (at+m-1)%m || j == (at+1)%m {
			continue
		}
		if inTriangle(t.polygon[ring[j]], a, b, c) {
			return true
		}
	}

	return false
}

// cross is the z component of (b−a)×(c−b), in double precision.
func cross(a, b, c mgl32.Vec2) float64 {
	abx, aby := float64(b[0])-float64(a[0]), float64(b[1])-float64(a[1])
	bcx, bcy := float64(c[0])-float64(b[0]), float64(c[1])-float64(b[1])

	return abx*bcy - aby*bcx
}

// inTriangle is inclusive of edges and works for either winding.
func inTriangle(p, a, b, c mgl32.Vec2) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// signedArea is twice the shoelace area; positive for counter-clockwise.
func signedArea(poly []mgl32.Vec2) float64 {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		p, q := poly[i], poly[(i+1)%n]
		sum += float64(p[0])*float64(q[1]) - float64(q[0])*float64(p[1])
	}

	return sum
}
