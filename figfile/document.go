package figfile

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/OliverKKY/pltrs"
)

// Document errors.
var (
	ErrNoAxes         = errors.New("figfile: document has no axes")
	ErrUnknownKind    = errors.New("figfile: unknown node kind")
	ErrUnknownMarker  = errors.New("figfile: unknown marker")
	ErrUnknownTheme   = errors.New("figfile: unknown theme")
	ErrLengthMismatch = errors.New("figfile: data length mismatch")
	ErrGridOverflow   = errors.New("figfile: more axes than grid cells")
	ErrInvalidGrid    = errors.New("figfile: grid needs positive rows and cols")
	ErrInvalidColor   = errors.New("figfile: invalid color")
)

// Default figure size when a document omits it.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Document is the serialized form of a figure.
type Document struct {
	Width      uint32    `json:"width,omitempty" yaml:"width,omitempty"`
	Height     uint32    `json:"height,omitempty" yaml:"height,omitempty"`
	DPI        float32   `json:"dpi,omitempty" yaml:"dpi,omitempty"`
	Theme      string    `json:"theme,omitempty" yaml:"theme,omitempty"`
	ClearColor string    `json:"clear_color,omitempty" yaml:"clear_color,omitempty"`
	Grid       *Grid     `json:"grid,omitempty" yaml:"grid,omitempty"`
	Axes       []AxesDoc `json:"axes" yaml:"axes"`
}

// Grid lays axes out row-major in a rows x cols subplot grid.
type Grid struct {
	Rows int     `json:"rows" yaml:"rows"`
	Cols int     `json:"cols" yaml:"cols"`
	Gap  float32 `json:"gap,omitempty" yaml:"gap,omitempty"`
}

// AxesDoc describes one axes. Rect is [x, y, w, h] in figure fractions.
type AxesDoc struct {
	Rect  *[4]float32 `json:"rect,omitempty" yaml:"rect,omitempty"`
	XLim  *[2]float64 `json:"xlim,omitempty" yaml:"xlim,omitempty"`
	YLim  *[2]float64 `json:"ylim,omitempty" yaml:"ylim,omitempty"`
	Nodes []NodeDoc   `json:"nodes" yaml:"nodes"`
}

// NodeDoc describes one node. Which fields apply depends on Kind:
// line uses X, Y, Width; scatter uses X, Y, Size, Marker; bar uses X,
// Heights, Width (in x data units).
type NodeDoc struct {
	Kind    string    `json:"kind" yaml:"kind"`
	X       []float64 `json:"x" yaml:"x"`
	Y       []float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Heights []float64 `json:"heights,omitempty" yaml:"heights,omitempty"`
	Color   string    `json:"color,omitempty" yaml:"color,omitempty"`
	Width   float32   `json:"width,omitempty" yaml:"width,omitempty"`
	Size    float32   `json:"size,omitempty" yaml:"size,omitempty"`
	Marker  string    `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// Node defaults.
const (
	defaultLineWidth  = 1.5
	defaultMarkerSize = 6
	defaultBarWidth   = 0.8
)

// Size returns the document's figure size with defaults applied.
func (d *Document) Size() pltrs.Size {
	s := pltrs.Size{Width: d.Width, Height: d.Height, DPI: d.DPI}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.DPI <= 0 {
		s.DPI = 1
	}
	return s
}

// Figure validates the document and builds the figure it describes.
func (d *Document) Figure() (*pltrs.Figure, error) {
	if len(d.Axes) == 0 {
		return nil, ErrNoAxes
	}
	theme, err := themeByName(d.Theme)
	if err != nil {
		return nil, err
	}
	if d.ClearColor != "" {
		c, err := parseColor(d.ClearColor)
		if err != nil {
			return nil, fmt.Errorf("figfile: clear_color: %w", err)
		}
		theme.Background = c
	}

	size := d.Size()
	rects, err := d.rects(size, theme)
	if err != nil {
		return nil, err
	}

	fig := pltrs.NewFigure(size)
	fig.ClearColor = theme.Background
	for i := range d.Axes {
		ax, err := d.Axes[i].build(rects[i], theme)
		if err != nil {
			return nil, fmt.Errorf("figfile: axes %d: %w", i, err)
		}
		fig.AddAxes(ax)
	}
	return fig, nil
}

// rects resolves the rect of every axes.
func (d *Document) rects(size pltrs.Size, theme pltrs.Theme) ([]pltrs.Rect, error) {
	out := make([]pltrs.Rect, len(d.Axes))

	var cells []pltrs.Rect
	if d.Grid != nil {
		if d.Grid.Rows <= 0 || d.Grid.Cols <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, d.Grid.Rows, d.Grid.Cols)
		}
		opts := []pltrs.LayoutOption{pltrs.WithTheme(theme)}
		if d.Grid.Gap > 0 {
			opts = append(opts, pltrs.WithGap(d.Grid.Gap))
		}
		grid, idx := pltrs.Subplots(size, d.Grid.Rows, d.Grid.Cols, [2]float64{0, 1}, [2]float64{0, 1}, opts...)
		for _, i := range idx {
			cells = append(cells, grid.Axes[i].Rect)
		}
		if len(d.Axes) > len(cells) {
			return nil, fmt.Errorf("%w: %d axes, %d cells", ErrGridOverflow, len(d.Axes), len(cells))
		}
	}

	for i, a := range d.Axes {
		switch {
		case a.Rect != nil:
			out[i] = pltrs.Rect{X: a.Rect[0], Y: a.Rect[1], W: a.Rect[2], H: a.Rect[3]}
		case cells != nil:
			out[i] = cells[i]
		default:
			out[i] = pltrs.DefaultLayoutParams().Rect(size)
		}
	}
	return out, nil
}

func (a *AxesDoc) build(rect pltrs.Rect, theme pltrs.Theme) (pltrs.Axes, error) {
	autoX, autoY := a.dataLimits()
	xlim, ylim := autoX, autoY
	if a.XLim != nil {
		xlim = *a.XLim
	}
	if a.YLim != nil {
		ylim = *a.YLim
	}

	ax := pltrs.NewAxes(rect,
		pltrs.Linear(xlim, [2]float64{0, 1}),
		pltrs.Linear(ylim, [2]float64{0, 1}))

	for i := range a.Nodes {
		n, err := a.Nodes[i].build(theme, i, len(a.Nodes))
		if err != nil {
			return pltrs.Axes{}, fmt.Errorf("node %d: %w", i, err)
		}
		ax.Add(n)
	}
	return ax, nil
}

func (n *NodeDoc) build(theme pltrs.Theme, i, count int) (pltrs.Node, error) {
	col := theme.CycleColor(i, count)
	if n.Color != "" {
		c, err := parseColor(n.Color)
		if err != nil {
			return nil, err
		}
		col = c
	}

	switch strings.ToLower(n.Kind) {
	case "line":
		if len(n.X) != len(n.Y) {
			return nil, fmt.Errorf("%w: %d x, %d y", ErrLengthMismatch, len(n.X), len(n.Y))
		}
		return pltrs.Line{Xs: n.X, Ys: n.Y, Color: col, Width: orDefault(n.Width, defaultLineWidth)}, nil

	case "scatter":
		if len(n.X) != len(n.Y) {
			return nil, fmt.Errorf("%w: %d x, %d y", ErrLengthMismatch, len(n.X), len(n.Y))
		}
		m, err := parseMarker(n.Marker)
		if err != nil {
			return nil, err
		}
		return pltrs.Scatter{Xs: n.X, Ys: n.Y, Color: col, Size: orDefault(n.Size, defaultMarkerSize), Marker: m}, nil

	case "bar":
		if len(n.X) != len(n.Heights) {
			return nil, fmt.Errorf("%w: %d x, %d heights", ErrLengthMismatch, len(n.X), len(n.Heights))
		}
		return pltrs.Bar{Xs: n.X, Heights: n.Heights, Width: orDefault(n.Width, defaultBarWidth), Color: col}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
}

// dataLimits returns the x and y extents of every node in the axes. Bars
// include their baseline and full width. Empty or degenerate extents are
// widened so the scale stays usable.
func (a *AxesDoc) dataLimits() (x, y [2]float64) {
	x = [2]float64{math.Inf(1), math.Inf(-1)}
	y = x
	grow := func(lim *[2]float64, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		lim[0], lim[1] = min(lim[0], v), max(lim[1], v)
	}

	for _, n := range a.Nodes {
		switch strings.ToLower(n.Kind) {
		case "bar":
			half := float64(orDefault(n.Width, defaultBarWidth)) / 2
			for _, v := range n.X {
				grow(&x, v-half)
				grow(&x, v+half)
			}
			grow(&y, 0)
			for _, v := range n.Heights {
				grow(&y, v)
			}
		default:
			for _, v := range n.X {
				grow(&x, v)
			}
			for _, v := range n.Y {
				grow(&y, v)
			}
		}
	}
	return widen(x), widen(y)
}

// widen fixes empty and zero-width limits.
func widen(lim [2]float64) [2]float64 {
	switch {
	case lim[0] > lim[1]:
		return [2]float64{0, 1}
	case lim[0] == lim[1]:
		return [2]float64{lim[0] - 0.5, lim[1] + 0.5}
	default:
		return lim
	}
}

func themeByName(name string) (pltrs.Theme, error) {
	switch strings.ToLower(name) {
	case "", "default", "light":
		return pltrs.DefaultTheme(), nil
	case "dark":
		return pltrs.DarkTheme(), nil
	default:
		return pltrs.Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

func parseMarker(s string) (pltrs.Marker, error) {
	switch strings.ToLower(s) {
	case "", "circle", "o":
		return pltrs.MarkerCircle, nil
	case "square", "s":
		return pltrs.MarkerSquare, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMarker, s)
	}
}

// parseColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa.
func parseColor(s string) (pltrs.Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return pltrs.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return pltrs.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return pltrs.Hex(h), nil
}

func orDefault(v, def float32) float32 {
	if v <= 0 {
		return def
	}
	return v
}
