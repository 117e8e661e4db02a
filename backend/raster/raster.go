package raster

import (
	"image"
	"image/draw"
	"log/slog"

	"golang.org/x/image/vector"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend"
	"github.com/OliverKKY/pltrs/internal/stroke"
)

// defaultLineWidth is used for lines whose Width is not positive.
const defaultLineWidth = 1

// Backend rasterizes figures on the CPU.
//
// Paint order within a frame is bars, then lines, then markers; within each
// kind, batches keep figure order. Backend is not safe for concurrent use.
type Backend struct {
	opts   options
	target *PixmapTarget
	z      *vector.Rasterizer
	dpi    float32

	inFrame bool
	frames  uint64
}

// New creates an uninitialized raster backend.
func New(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{opts: o}
}

// Name returns backend.BackendRaster.
func (b *Backend) Name() string {
	return backend.BackendRaster
}

// Init allocates (or resizes) the pixel target.
func (b *Backend) Init(desc backend.RenderTargetDesc) error {
	if err := desc.Validate(); err != nil {
		return err
	}

	if b.opts.target != nil {
		b.target = b.opts.target
		b.target.Resize(desc.Width, desc.Height)
	} else {
		b.target = NewPixmapTarget(desc.Width, desc.Height)
	}
	b.z = vector.NewRasterizer(desc.Width, desc.Height)
	b.z.DrawOp = draw.Over
	b.dpi = desc.Scale()
	return nil
}

// BeginFrame clears the target. It is a no-op before Init.
func (b *Backend) BeginFrame(clear pltrs.Color) {
	if b.target == nil {
		return
	}
	b.target.Clear(clear)
	b.inFrame = true
}

// DrawScene batches fig and fills every batch into the target.
func (b *Backend) DrawScene(fig *pltrs.Figure) error {
	if b.target == nil {
		return backend.ErrNotInitialized
	}
	if fig == nil {
		return backend.ErrNilFigure
	}

	batches := pltrs.BuildBatches(fig)
	for i := range batches.Bars {
		b.drawBars(&batches.Bars[i])
	}
	for i := range batches.Lines {
		b.drawLine(&batches.Lines[i])
	}
	for i := range batches.Markers {
		b.drawMarkers(&batches.Markers[i])
	}
	return nil
}

// EndFrame finishes the frame and runs the frame hook, if any.
func (b *Backend) EndFrame() error {
	if b.target == nil {
		return backend.ErrNotInitialized
	}
	if !b.inFrame {
		return nil
	}
	b.inFrame = false
	b.frames++
	if b.opts.onFrame != nil {
		b.opts.onFrame(b.target.Image())
	}
	return nil
}

// Resize changes the target size. Contents are not preserved.
func (b *Backend) Resize(width, height int) {
	if b.target == nil || width <= 0 || height <= 0 {
		return
	}
	b.target.Resize(width, height)
	b.z.Reset(width, height)
	pltrs.Logger().Debug("raster: resized", slog.Int("width", width), slog.Int("height", height))
}

// Close releases the target.
func (b *Backend) Close() {
	b.target = nil
	b.z = nil
	b.inFrame = false
}

// Image returns the current target image, or nil before Init.
func (b *Backend) Image() *image.RGBA {
	if b.target == nil {
		return nil
	}
	return b.target.Image()
}

// Target returns the pixel target, or nil before Init.
func (b *Backend) Target() *PixmapTarget {
	return b.target
}

// Frames returns the number of completed frames.
func (b *Backend) Frames() uint64 {
	return b.frames
}

// toPixel maps a figure-normalized point to pixel space.
func (b *Backend) toPixel(p [2]float32) stroke.Point {
	w, h := float32(b.target.Width()), float32(b.target.Height())
	return stroke.Point{X: p[0] * w, Y: (1 - p[1]) * h}
}

// viewport returns the target bounds in pixels.
func (b *Backend) viewport() stroke.Box {
	return stroke.Box{MaxX: float32(b.target.Width()), MaxY: float32(b.target.Height())}
}

func (b *Backend) drawLine(l *pltrs.LineBatch) {
	if len(l.Vertices) < 2 {
		return
	}
	width := l.Width
	if !(width > 0) {
		width = defaultLineWidth
	}
	width *= b.dpi

	pts := make([]stroke.Point, len(l.Vertices))
	for i, v := range l.Vertices {
		pts[i] = b.toPixel(v)
	}
	var polys []stroke.Polygon
	for _, run := range stroke.ClipPolyline(pts, b.viewport().Grow(width)) {
		polys = append(polys, stroke.Polyline(run, width, b.opts.roundJoins)...)
	}
	b.fill(polys, l.Color)
}

func (b *Backend) drawMarkers(m *pltrs.MarkerBatch) {
	size := m.Size * b.dpi
	if !(size > 0) || len(m.Points) == 0 {
		return
	}

	vp := b.viewport().Grow(size)
	polys := make([]stroke.Polygon, 0, len(m.Points))
	for _, p := range m.Points {
		c := b.toPixel(p)
		if !vp.Contains(c) {
			continue
		}
		switch m.Marker {
		case pltrs.MarkerSquare:
			polys = append(polys, stroke.Square(c, size))
		default:
			polys = append(polys, stroke.Circle(c, size/2, 0))
		}
	}
	b.fill(polys, m.Color)
}

func (b *Backend) drawBars(bar *pltrs.BarBatch) {
	vp := b.viewport().Grow(1)
	polys := make([]stroke.Polygon, 0, len(bar.Rects))
	for _, r := range bar.Rects {
		p0 := b.toPixel([2]float32{r.X, r.Y})
		p1 := b.toPixel([2]float32{r.X + r.W, r.Y + r.H})
		if q := stroke.ClipRect(p0.X, p0.Y, p1.X, p1.Y, vp); q != nil {
			polys = append(polys, q)
		}
	}
	b.fill(polys, bar.Color)
}

// fill accumulates polys into the rasterizer and composites them once with c.
func (b *Backend) fill(polys []stroke.Polygon, c pltrs.Color) {
	if len(polys) == 0 || c.A <= 0 {
		return
	}

	img := b.target.Image()
	b.z.Reset(img.Bounds().Dx(), img.Bounds().Dy())
	b.z.DrawOp = draw.Over
	for _, p := range polys {
		if len(p) < 3 || !finitePolygon(p) {
			continue
		}
		b.z.MoveTo(p[0].X, p[0].Y)
		for _, q := range p[1:] {
			b.z.LineTo(q.X, q.Y)
		}
		b.z.ClosePath()
	}
	b.z.Draw(img, img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

func finitePolygon(p stroke.Polygon) bool {
	for _, q := range p {
		if !q.Finite() {
			return false
		}
	}
	return true
}

// Ensure Backend implements backend.RenderBackend.
var _ backend.RenderBackend = (*Backend)(nil)
