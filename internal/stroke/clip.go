package stroke

import "math"

// Box is an axis-aligned clip rectangle.
type Box struct {
	MinX, MinY, MaxX, MaxY float32
}

// Grow returns b expanded by d on every side.
func (b Box) Grow(d float32) Box {
	return Box{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// Contains reports whether p lies inside b, edges included. It is false for
// NaN and infinite points.
func (b Box) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Finite reports whether both coordinates of p are finite.
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ClipSegment clips a-b to box with the Liang-Barsky algorithm. It returns
// false when the segment misses box or has a non-finite endpoint. An endpoint
// inside box is returned unchanged.
func ClipSegment(a, b Point, box Box) (Point, Point, bool) {
	if !a.Finite() || !b.Finite() {
		return a, b, false
	}

	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-x0, float64(b.Y)-y0
	t0, t1 := 0.0, 1.0
	edge := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
		return true
	}
	if !edge(-dx, x0-float64(box.MinX)) || !edge(dx, float64(box.MaxX)-x0) ||
		!edge(-dy, y0-float64(box.MinY)) || !edge(dy, float64(box.MaxY)-y0) {
		return a, b, false
	}

	ca, cb := a, b
	if t0 > 0 {
		ca = Point{X: float32(x0 + t0*dx), Y: float32(y0 + t0*dy)}
	}
	if t1 < 1 {
		cb = Point{X: float32(x0 + t1*dx), Y: float32(y0 + t1*dy)}
	}
	return ca, cb, true
}

// ClipPolyline clips pts to box. The polyline is split wherever it leaves
// box or reaches a non-finite point, so the result is a list of runs of at
// least two points each.
func ClipPolyline(pts []Point, box Box) [][]Point {
	var runs [][]Point
	var cur []Point
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b, ok := ClipSegment(pts[i], pts[i+1], box)
		if !ok {
			flush()
			continue
		}
		if len(cur) == 0 || cur[len(cur)-1] != a {
			flush()
			cur = append(cur, a)
		}
		cur = append(cur, b)
	}
	flush()
	return runs
}

// ClipRect returns the rectangle spanned by two opposite corners intersected
// with box. Infinite corners are clamped; NaN corners or an empty
// intersection give nil.
func ClipRect(x0, y0, x1, y1 float32, box Box) Polygon {
	for _, v := range [...]float32{x0, y0, x1, y1} {
		if math.IsNaN(float64(v)) {
			return nil
		}
	}
	lx, hx := max(min(x0, x1), box.MinX), min(max(x0, x1), box.MaxX)
	ly, hy := max(min(y0, y1), box.MinY), min(max(y0, y1), box.MaxY)
	if lx >= hx || ly >= hy {
		return nil
	}
	return Rect(lx, ly, hx, hy)
}
