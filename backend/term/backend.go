package term

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend"
	"github.com/OliverKKY/pltrs/internal/stroke"
)

// Backend draws figures into a braille Canvas.
//
// The target size is in terminal cells. Marker sizes are converted from
// figure pixels to micro-pixels using the figure width.
type Backend struct {
	opts   options
	canvas *Canvas
	frame  string

	inFrame bool
}

// New creates an uninitialized terminal backend.
func New(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{opts: o}
}

// Name returns backend.BackendTerm.
func (b *Backend) Name() string {
	return backend.BackendTerm
}

// Init allocates a canvas of desc.Width x desc.Height cells.
func (b *Backend) Init(desc backend.RenderTargetDesc) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	b.canvas = NewCanvas(desc.Width, desc.Height)
	return nil
}

// BeginFrame clears the canvas. Terminal output has no background fill, so
// the clear color is ignored.
func (b *Backend) BeginFrame(_ pltrs.Color) {
	if b.canvas == nil {
		return
	}
	b.canvas.Clear()
	b.inFrame = true
}

// DrawScene batches fig and plots every batch on the canvas.
func (b *Backend) DrawScene(fig *pltrs.Figure) error {
	if b.canvas == nil {
		return backend.ErrNotInitialized
	}
	if fig == nil {
		return backend.ErrNilFigure
	}

	batches := pltrs.BuildBatches(fig)
	scale := b.microPerPixel(fig.Size)
	vp := b.viewport()

	for _, bar := range batches.Bars {
		for _, r := range bar.Rects {
			p0 := b.toMicro([2]float32{r.X, r.Y + r.H})
			p1 := b.toMicro([2]float32{r.X + r.W, r.Y})
			q := stroke.ClipRect(p0.X, p0.Y, p1.X, p1.Y, vp)
			if q == nil {
				continue
			}
			minX, minY, maxX, maxY := q.Bounds()
			x0, y0 := b.dot(stroke.Point{X: minX, Y: minY})
			x1, y1 := b.dot(stroke.Point{X: maxX, Y: maxY})
			b.canvas.FillRect(x0, y0, x1, y1, bar.Color)
		}
	}
	for _, l := range batches.Lines {
		pts := make([]stroke.Point, len(l.Vertices))
		for i, v := range l.Vertices {
			pts[i] = b.toMicro(v)
		}
		if len(pts) == 1 {
			if vp.Contains(pts[0]) {
				x, y := b.dot(pts[0])
				b.canvas.Set(x, y, l.Color)
			}
			continue
		}
		for _, run := range stroke.ClipPolyline(pts, vp) {
			x0, y0 := b.dot(run[0])
			for _, p := range run[1:] {
				x1, y1 := b.dot(p)
				b.canvas.Line(x0, y0, x1, y1, l.Color)
				x0, y0 = x1, y1
			}
		}
	}
	for _, m := range batches.Markers {
		mw, mh := b.canvas.MicroSize()
		rf := m.Size * scale / 2
		if math.IsNaN(float64(rf)) {
			continue
		}
		r := int(math.Round(float64(max(0, min(rf, float32(mw+mh))))))
		grown := vp.Grow(float32(r))
		for _, p := range m.Points {
			c := b.toMicro(p)
			if !grown.Contains(c) {
				continue
			}
			x, y := b.dot(c)
			if m.Marker == pltrs.MarkerSquare {
				b.canvas.FillRect(x-r, y-r, x+r, y+r, m.Color)
			} else {
				b.canvas.FillCircle(x, y, r, m.Color)
			}
		}
	}
	return nil
}

// EndFrame renders the canvas to text and writes it to the configured
// output, if any.
func (b *Backend) EndFrame() error {
	if b.canvas == nil {
		return backend.ErrNotInitialized
	}
	if !b.inFrame {
		return nil
	}
	b.inFrame = false

	if b.opts.color {
		b.frame = b.canvas.Render()
	} else {
		b.frame = strings.Join(b.canvas.Lines(), "\n")
	}
	if b.opts.out != nil {
		if _, err := io.WriteString(b.opts.out, b.frame+"\n"); err != nil {
			return fmt.Errorf("term: write frame: %w", err)
		}
	}
	return nil
}

// Resize changes the canvas size in cells.
func (b *Backend) Resize(width, height int) {
	if b.canvas == nil || width <= 0 || height <= 0 {
		return
	}
	b.canvas.Resize(width, height)
}

// Close drops the canvas.
func (b *Backend) Close() {
	b.canvas = nil
	b.frame = ""
	b.inFrame = false
}

// Frame returns the text of the last completed frame.
func (b *Backend) Frame() string {
	return b.frame
}

// Canvas returns the braille canvas, or nil before Init.
func (b *Backend) Canvas() *Canvas {
	return b.canvas
}

// toMicro maps a figure-normalized point to micro-pixel space.
func (b *Backend) toMicro(p [2]float32) stroke.Point {
	mw, mh := b.canvas.MicroSize()
	return stroke.Point{X: p[0] * float32(mw), Y: (1 - p[1]) * float32(mh)}
}

// viewport returns the canvas bounds in micro-pixels.
func (b *Backend) viewport() stroke.Box {
	mw, mh := b.canvas.MicroSize()
	return stroke.Box{MaxX: float32(mw), MaxY: float32(mh)}
}

// dot returns the micro-pixel containing p. The exact top and right edges
// map to the last micro-pixel row and column. p must be finite.
func (b *Backend) dot(p stroke.Point) (int, int) {
	mw, mh := b.canvas.MicroSize()
	x := int(math.Floor(float64(p.X)))
	y := int(math.Floor(float64(p.Y)))
	if x == mw {
		x--
	}
	if y == mh {
		y--
	}
	return x, y
}

// microPerPixel converts figure pixels to micro-pixels horizontally.
func (b *Backend) microPerPixel(s pltrs.Size) float32 {
	if s.Width == 0 {
		return 1
	}
	mw, _ := b.canvas.MicroSize()
	return float32(mw) / float32(s.Width)
}

// Ensure Backend implements backend.RenderBackend.
var _ backend.RenderBackend = (*Backend)(nil)
