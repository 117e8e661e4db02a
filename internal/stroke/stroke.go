package stroke

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float32
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the length of v.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Polygon is a closed convex polygon. The closing edge from the last point
// back to the first is implicit.
type Polygon []Point

// Area returns the signed area of p. It is positive for counter-clockwise
// winding.
func (p Polygon) Area() float32 {
	var a float32
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

// Bounds returns the axis-aligned bounding box of p.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float32) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p[0].X, p[0].Y
	maxX, maxY = minX, minY
	for _, q := range p[1:] {
		minX, maxX = min(minX, q.X), max(maxX, q.X)
		minY, maxY = min(minY, q.Y), max(maxY, q.Y)
	}
	return minX, minY, maxX, maxY
}

// ccw reverses p in place if it winds clockwise.
func ccw(p Polygon) Polygon {
	if p.Area() < 0 {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
	return p
}

// Segment returns the quad covering the segment a-b stroked with width.
// Returns nil for a zero-length segment or a non-positive width.
func Segment(a, b Point, width float32) Polygon {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || width <= 0 {
		return nil
	}
	n := d.Perp().Scale(width / 2 / l)
	return ccw(Polygon{
		a.Add(n.Scale(-1)),
		b.Add(n.Scale(-1)),
		b.Add(n),
		a.Add(n),
	})
}

// Polyline strokes pts with the given width. Each segment becomes one quad;
// with roundJoins, every interior vertex also gets a disc of diameter width.
//
// Consecutive duplicate points produce no quad. Fewer than two points
// produce nothing.
func Polyline(pts []Point, width float32, roundJoins bool) []Polygon {
	if len(pts) < 2 || width <= 0 {
		return nil
	}

	out := make([]Polygon, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		if q := Segment(pts[i], pts[i+1], width); q != nil {
			out = append(out, q)
		}
	}
	if roundJoins {
		for i := 1; i+1 < len(pts); i++ {
			out = append(out, Circle(pts[i], width/2, 0))
		}
	}
	return out
}

// Fan splits a convex polygon into len(p)-2 triangles sharing p[0].
// Winding is preserved. Returns nil for fewer than 3 points.
func Fan(p Polygon) [][3]Point {
	if len(p) < 3 {
		return nil
	}
	tris := make([][3]Point, 0, len(p)-2)
	for i := 1; i+1 < len(p); i++ {
		tris = append(tris, [3]Point{p[0], p[i], p[i+1]})
	}
	return tris
}
