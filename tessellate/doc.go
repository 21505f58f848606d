// Package tessellate triangulates simple 2D polygons.
//
// The result is a flat index list: each triangle is three indices into the
// input polygon, in the polygon's own winding order, followed by Sentinel
// (-1). A convex quadrilateral therefore yields eight entries:
//
//	poly := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
//	tessellate.New(poly).Tessellate() // [3 0 1 -1 1 2 3 -1]
//
// The polygon is closed implicitly (last point back to the first). Input is
// not validated: fewer than three points yields no triangles, and
// self-intersecting outlines get a best-effort fan that always terminates.
//
// Complexity: O(n²) time (ear clipping), O(n) extra space.
package tessellate
