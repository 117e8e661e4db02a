package stroke

import "math"

const (
	minCircleSegments = 8
	maxCircleSegments = 64
)

// CircleSegments returns the number of sides used to approximate a circle
// of the given radius with sub-pixel error.
func CircleSegments(radius float32) int {
	if radius <= 0 {
		return minCircleSegments
	}
	// Chord error r*(1-cos(pi/n)) <= 0.25 px.
	n := int(math.Ceil(math.Pi / math.Acos(1-0.25/math.Max(float64(radius), 0.25))))
	return max(minCircleSegments, min(maxCircleSegments, n))
}

// Circle returns a regular polygon approximating a circle. If segments is
// not positive it is chosen with CircleSegments.
func Circle(c Point, radius float32, segments int) Polygon {
	if radius <= 0 {
		return nil
	}
	if segments <= 0 {
		segments = CircleSegments(radius)
	}
	segments = max(segments, 3)

	p := make(Polygon, segments)
	for i := range p {
		a := 2 * math.Pi * float64(i) / float64(segments)
		p[i] = Point{
			X: c.X + radius*float32(math.Cos(a)),
			Y: c.Y + radius*float32(math.Sin(a)),
		}
	}
	return p
}

// Square returns the axis-aligned square of the given side centered on c.
func Square(c Point, side float32) Polygon {
	if side <= 0 {
		return nil
	}
	h := side / 2
	return Rect(c.X-h, c.Y-h, c.X+h, c.Y+h)
}

// Rect returns the axis-aligned rectangle spanned by two opposite corners.
// Returns nil when it has no area.
func Rect(x0, y0, x1, y1 float32) Polygon {
	if x0 == x1 || y0 == y1 {
		return nil
	}
	return ccw(Polygon{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
}
