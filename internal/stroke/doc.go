// Package stroke tessellates plot geometry into convex polygons.
//
// Every shape a plot backend draws reduces to a set of convex polygons:
//   - a polyline segment becomes a quad offset by width/2 on each side
//   - an interior polyline joint is covered by a round join (a disc)
//   - a circle marker is a regular n-gon
//   - a square marker or bar is an axis-aligned rect
//
// All polygons are returned with counter-clockwise winding (positive signed
// area) in whatever coordinate system the caller passes in, so a consumer
// that fans them into triangles gets consistently oriented output.
//
// # Usage
//
//	quads := stroke.Polyline(points, 2, true)
//	for _, p := range quads {
//		for _, tri := range stroke.Fan(p) {
//			emit(tri)
//		}
//	}
package stroke
