package pltrs

// Size is the physical pixel size and display density of a figure's target
// surface. A resize produces a new Size rather than mutating the old one.
type Size struct {
	Width  uint32
	Height uint32
	DPI    float32
}

// Rect is a region of a figure expressed as fractions of the figure's pixel
// size. (X, Y) is the bottom-left corner; W and H are expected to be positive.
//
// X+W <= 1 and Y+H <= 1 are expected but not enforced: out-of-range rects
// silently produce off-viewport geometry.
type Rect struct {
	X, Y, W, H float32
}

// Project maps an axes-local normalized point (u, v) into figure-normalized
// coordinates: (X + W*u, Y + H*v).
func (r Rect) Project(u, v float32) [2]float32 {
	return [2]float32{r.X + r.W*u, r.Y + r.H*v}
}

// Figure is the root of a plot scene: a size, an ordered list of axes and a
// clear color.
//
// Axes are appended, never removed or reordered; insertion order is the
// traversal and paint order. Callers refer to an axes by its index.
type Figure struct {
	Size       Size
	Axes       []Axes
	ClearColor Color
}

// NewFigure creates an empty figure of the given size with a white clear color.
func NewFigure(size Size) *Figure {
	return &Figure{
		Size:       size,
		ClearColor: White,
	}
}

// AddAxes appends axes to the figure and returns its index.
func (f *Figure) AddAxes(a Axes) int {
	f.Axes = append(f.Axes, a)
	return len(f.Axes) - 1
}

// Resize returns the figure's size with new pixel dimensions and the same DPI,
// and stores it on the figure. Axes rects are normalized, so they follow the
// new size without re-layout.
func (f *Figure) Resize(width, height uint32) Size {
	f.Size = Size{Width: width, Height: height, DPI: f.Size.DPI}
	return f.Size
}

// NodeCount returns the total number of nodes across all axes.
func (f *Figure) NodeCount() int {
	n := 0
	for i := range f.Axes {
		n += len(f.Axes[i].Children)
	}
	return n
}

// Axes is a rectangular plotting region with its own x and y scales and an
// ordered list of child nodes.
type Axes struct {
	Rect     Rect
	X        Scale
	Y        Scale
	Children []Node
}

// NewAxes creates axes occupying rect with the given scales and no children.
func NewAxes(rect Rect, x, y Scale) Axes {
	return Axes{Rect: rect, X: x, Y: y}
}

// Add appends a node to the axes.
func (a *Axes) Add(n Node) {
	a.Children = append(a.Children, n)
}

// NodeKind identifies a Node variant.
type NodeKind uint8

const (
	// KindLine is an ordered polyline.
	KindLine NodeKind = iota
	// KindScatter is a set of independent point markers.
	KindScatter
	// KindBar is a set of bars rising from the zero baseline.
	KindBar
)

// AllNodeKinds lists every node variant in declaration order.
var AllNodeKinds = []NodeKind{KindLine, KindScatter, KindBar}

// String returns the variant name.
func (k NodeKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindScatter:
		return "scatter"
	case KindBar:
		return "bar"
	default:
		return "unknown"
	}
}

// Node is a drawable element owned by an axes.
//
// The set of nodes is closed: Line, Scatter and Bar are the only
// implementations, and BuildBatches handles each of them explicitly.
type Node interface {
	Kind() NodeKind
	node()
}

// Line is an ordered polyline. Xs[i] and Ys[i] are paired by index.
type Line struct {
	Xs    []float64
	Ys    []float64
	Color Color
	Width float32
}

// Kind returns KindLine.
func (Line) Kind() NodeKind { return KindLine }
func (Line) node()          {}

// Marker is the shape drawn for each scatter point.
type Marker uint8

const (
	// MarkerCircle draws a filled disc.
	MarkerCircle Marker = iota
	// MarkerSquare draws a filled axis-aligned square.
	MarkerSquare
)

// String returns the marker name.
func (m Marker) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Scatter is a set of independent point samples. Size is the marker
// diameter (circle) or side (square) in pixels at DPI 1.
type Scatter struct {
	Xs     []float64
	Ys     []float64
	Color  Color
	Size   float32
	Marker Marker
}

// Kind returns KindScatter.
func (Scatter) Kind() NodeKind { return KindScatter }
func (Scatter) node()          {}

// Bar is a set of bars centered on Xs, rising from y=0 to Heights.
// Width is measured in x data units.
type Bar struct {
	Xs      []float64
	Heights []float64
	Width   float32
	Color   Color
}

// Kind returns KindBar.
func (Bar) Kind() NodeKind { return KindBar }
func (Bar) node()          {}

// Ensure the node variants implement Node.
var (
	_ Node = Line{}
	_ Node = Scatter{}
	_ Node = Bar{}
)
