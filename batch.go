package pltrs

import "log/slog"

// LineBatch is the resolved geometry of one Line node: vertices in
// figure-normalized coordinates, in the source index order.
type LineBatch struct {
	Vertices [][2]float32
	Color    Color
	Width    float32
}

// MarkerBatch is the resolved geometry of one Scatter node. Points are
// marker centers in figure-normalized coordinates; Size stays in pixels.
type MarkerBatch struct {
	Points [][2]float32
	Color  Color
	Size   float32
	Marker Marker
}

// BarBatch is the resolved geometry of one Bar node: one figure-normalized
// rect per bar, with non-negative W and H.
type BarBatch struct {
	Rects []Rect
	Color Color
}

// Batches is the flattened, device-ready form of a whole figure.
//
// Each slice preserves figure axes order, then node order within each axes.
// That order is the paint order for backends. Batches holds no references
// into the Figure it was built from.
type Batches struct {
	Lines   []LineBatch
	Markers []MarkerBatch
	Bars    []BarBatch
}

// Len returns the total number of batches.
func (b *Batches) Len() int {
	return len(b.Lines) + len(b.Markers) + len(b.Bars)
}

// VertexCount returns the number of line vertices, marker points and bar
// rects across all batches.
func (b *Batches) VertexCount() int {
	n := 0
	for i := range b.Lines {
		n += len(b.Lines[i].Vertices)
	}
	for i := range b.Markers {
		n += len(b.Markers[i].Points)
	}
	for i := range b.Bars {
		n += len(b.Bars[i].Rects)
	}
	return n
}

// BuildBatches flattens fig into batches.
//
// For every axes in figure order and every node in child order, data
// coordinates are mapped through the axes scales and then projected through
// the axes rect into figure-normalized coordinates. BuildBatches is pure and
// deterministic: it reads fig, allocates fresh output and keeps no state, so
// repeated calls on an unmodified figure return equal results.
//
// A nil figure yields empty batches.
func BuildBatches(fig *Figure) Batches {
	var batches Batches
	if fig == nil {
		return batches
	}

	for ai := range fig.Axes {
		axes := &fig.Axes[ai]
		for ni, node := range axes.Children {
			switch n := node.(type) {
			case Line:
				batches.Lines = append(batches.Lines, buildLine(axes, &n))
			case *Line:
				if n != nil {
					batches.Lines = append(batches.Lines, buildLine(axes, n))
				}
			case Scatter:
				batches.Markers = append(batches.Markers, buildMarkers(axes, &n))
			case *Scatter:
				if n != nil {
					batches.Markers = append(batches.Markers, buildMarkers(axes, n))
				}
			case Bar:
				batches.Bars = append(batches.Bars, buildBars(axes, &n))
			case *Bar:
				if n != nil {
					batches.Bars = append(batches.Bars, buildBars(axes, n))
				}
			default:
				Logger().Debug("pltrs: skipping node without batch support",
					slog.Int("axes", ai), slog.Int("node", ni))
			}
		}
	}

	Logger().Debug("pltrs: batches built",
		slog.Int("nodes", fig.NodeCount()),
		slog.Int("lines", len(batches.Lines)),
		slog.Int("markers", len(batches.Markers)),
		slog.Int("bars", len(batches.Bars)),
		slog.Int("vertices", batches.VertexCount()))

	return batches
}

// project maps a data point through the axes scales and rect.
func project(axes *Axes, x, y float64) [2]float32 {
	u := float32(mapOrIdentity(axes.X, x))
	v := float32(mapOrIdentity(axes.Y, y))
	return axes.Rect.Project(u, v)
}

// mapOrIdentity treats a missing scale as the identity mapping.
func mapOrIdentity(s Scale, v float64) float64 {
	if s == nil {
		return v
	}
	return s.Map(v)
}

func buildLine(axes *Axes, l *Line) LineBatch {
	n := min(len(l.Xs), len(l.Ys))
	vertices := make([][2]float32, n)
	for i := 0; i < n; i++ {
		vertices[i] = project(axes, l.Xs[i], l.Ys[i])
	}
	return LineBatch{
		Vertices: vertices,
		Color:    l.Color,
		Width:    l.Width,
	}
}

func buildMarkers(axes *Axes, s *Scatter) MarkerBatch {
	n := min(len(s.Xs), len(s.Ys))
	points := make([][2]float32, n)
	for i := 0; i < n; i++ {
		points[i] = project(axes, s.Xs[i], s.Ys[i])
	}
	return MarkerBatch{
		Points: points,
		Color:  s.Color,
		Size:   s.Size,
		Marker: s.Marker,
	}
}

func buildBars(axes *Axes, b *Bar) BarBatch {
	n := min(len(b.Xs), len(b.Heights))
	half := float64(b.Width) / 2
	rects := make([]Rect, n)
	for i := 0; i < n; i++ {
		p0 := project(axes, b.Xs[i]-half, 0)
		p1 := project(axes, b.Xs[i]+half, b.Heights[i])
		rects[i] = normalizedRect(p0, p1)
	}
	return BarBatch{
		Rects: rects,
		Color: b.Color,
	}
}

// normalizedRect returns the rect spanned by two opposite corners.
func normalizedRect(p0, p1 [2]float32) Rect {
	x0, x1 := min(p0[0], p1[0]), max(p0[0], p1[0])
	y0, y1 := min(p0[1], p1[1]), max(p0[1], p1[1])
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
