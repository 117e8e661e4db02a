package pltrs

// LayoutParams are the pixel margins between the figure edge and the axes
// area. Margins are device-independent: DPI is not applied.
type LayoutParams struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// DefaultLayoutParams returns the default margins: 60 left, 20 right,
// 20 top, 40 bottom.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Left:   60,
		Right:  20,
		Top:    20,
		Bottom: 40,
	}
}

// Rect returns the figure-normalized rect left inside the margins of a
// figure of the given size. The vertical origin is bottom-left, so Y is
// anchored at the bottom margin.
//
// Zero or negative sizes are not guarded and yield non-finite or negative
// fractions.
func (p LayoutParams) Rect(size Size) Rect {
	w := float32(size.Width)
	h := float32(size.Height)
	return Rect{
		X: p.Left / w,
		Y: p.Bottom / h,
		W: (w - p.Left - p.Right) / w,
		H: (h - p.Top - p.Bottom) / h,
	}
}

// SingleAxes creates a figure holding one axes laid out with the default
// margins. The axes maps xlim and ylim onto [0, 1].
//
// It returns the figure and the index of the inserted axes, so callers can
// keep adding nodes:
//
//	fig, ax := pltrs.SingleAxes(size, [2]float64{0, 10}, [2]float64{-1, 1})
//	fig.Axes[ax].Add(line)
func SingleAxes(size Size, xlim, ylim [2]float64) (*Figure, int) {
	return SingleAxesWith(size, xlim, ylim)
}

// SingleAxesWith is SingleAxes with layout options.
func SingleAxesWith(size Size, xlim, ylim [2]float64, opts ...LayoutOption) (*Figure, int) {
	o := applyLayoutOptions(opts)
	fig := newFigureWith(size, o)

	axes := NewAxes(
		o.params.Rect(size),
		Linear(xlim, [2]float64{0, 1}),
		Linear(ylim, [2]float64{0, 1}),
	)
	idx := fig.AddAxes(axes)
	return fig, idx
}

// Subplots creates a figure with a rows×cols grid of axes inside the
// margins, separated by the configured gap (20 px by default). Cells are
// appended in row-major order starting at the top-left, and every axes maps
// xlim and ylim onto [0, 1].
//
// Non-positive rows or cols produce a figure with no axes.
func Subplots(size Size, rows, cols int, xlim, ylim [2]float64, opts ...LayoutOption) (*Figure, []int) {
	o := applyLayoutOptions(opts)
	fig := newFigureWith(size, o)
	if rows <= 0 || cols <= 0 {
		return fig, nil
	}

	outer := o.params.Rect(size)
	gapX := o.gap / float32(size.Width)
	gapY := o.gap / float32(size.Height)
	cellW := (outer.W - gapX*float32(cols-1)) / float32(cols)
	cellH := (outer.H - gapY*float32(rows-1)) / float32(rows)

	idx := make([]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		// Row 0 is the top row; normalized y grows upward.
		y := outer.Y + float32(rows-1-r)*(cellH+gapY)
		for c := 0; c < cols; c++ {
			x := outer.X + float32(c)*(cellW+gapX)
			axes := NewAxes(
				Rect{X: x, Y: y, W: cellW, H: cellH},
				Linear(xlim, [2]float64{0, 1}),
				Linear(ylim, [2]float64{0, 1}),
			)
			idx = append(idx, fig.AddAxes(axes))
		}
	}
	return fig, idx
}

func newFigureWith(size Size, o layoutOptions) *Figure {
	fig := NewFigure(size)
	if o.theme != nil {
		fig.ClearColor = o.theme.Background
	}
	return fig
}
