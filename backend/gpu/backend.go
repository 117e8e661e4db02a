package gpu

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend"
	"github.com/OliverKKY/pltrs/internal/stroke"
)

// defaultLineWidth is used for lines whose Width is not positive.
const defaultLineWidth = 1

// Backend builds triangle-list frames from figures.
//
// Paint order within a frame is bars, then lines, then markers; within each
// kind, batches keep figure order. Backend is not safe for concurrent use.
type Backend struct {
	opts options

	width, height int
	dpi           float32
	format        gputypes.TextureFormat
	pipeline      PipelineDesc
	initialized   bool

	frame   Frame
	last    *Frame
	inFrame bool

	// scratch buffers reused across batches
	verts []Vertex
	pts   []stroke.Point
}

// New creates an uninitialized GPU backend.
func New(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{opts: o}
}

// Name returns backend.BackendGPU.
func (b *Backend) Name() string {
	return backend.BackendGPU
}

// Init records the target size and picks the surface format. When a
// Submitter is configured the shader is compiled and handed to Prepare.
func (b *Backend) Init(desc backend.RenderTargetDesc) error {
	if err := desc.Validate(); err != nil {
		return err
	}

	b.width, b.height = desc.Width, desc.Height
	b.dpi = desc.Scale()
	b.format = b.opts.handle.SurfaceFormat()
	if b.format == gputypes.TextureFormatUndefined {
		b.format = gputypes.TextureFormatRGBA8Unorm
	}

	if b.opts.submitter != nil {
		spirv, err := CompileShader()
		if err != nil {
			return err
		}
		b.pipeline = newPipelineDesc(spirv, b.format)
		if err := b.opts.submitter.Prepare(b.opts.handle, b.pipeline); err != nil {
			return fmt.Errorf("gpu: prepare pipeline: %w", err)
		}
	} else {
		b.pipeline = newPipelineDesc(nil, b.format)
	}

	b.initialized = true
	pltrs.Logger().Debug("gpu: initialized",
		slog.Bool("device", hasDevice(b.opts.handle)),
		slog.Bool("submitter", b.opts.submitter != nil))
	return nil
}

// BeginFrame starts a new frame cleared to clear. It is a no-op before Init.
func (b *Backend) BeginFrame(clear pltrs.Color) {
	if !b.initialized {
		return
	}
	b.frame.reset()
	b.frame.Width, b.frame.Height = b.width, b.height
	b.frame.Format = b.format
	b.frame.LoadOp = gputypes.LoadOpClear
	b.frame.StoreOp = gputypes.StoreOpStore
	b.frame.ClearValue = gputypes.Color{
		R: float64(clear.R),
		G: float64(clear.G),
		B: float64(clear.B),
		A: float64(clear.A),
	}
	b.inFrame = true
}

// DrawScene batches fig and appends its triangles to the current frame.
func (b *Backend) DrawScene(fig *pltrs.Figure) error {
	if !b.initialized {
		return backend.ErrNotInitialized
	}
	if fig == nil {
		return backend.ErrNilFigure
	}

	batches := pltrs.BuildBatches(fig)
	for i := range batches.Bars {
		b.addBars(&batches.Bars[i])
	}
	for i := range batches.Lines {
		b.addLine(&batches.Lines[i])
	}
	for i := range batches.Markers {
		b.addMarkers(&batches.Markers[i])
	}
	return nil
}

// EndFrame publishes the frame and submits it when a Submitter is set.
func (b *Backend) EndFrame() error {
	if !b.initialized {
		return backend.ErrNotInitialized
	}
	if !b.inFrame {
		return nil
	}
	b.inFrame = false
	b.last = &b.frame

	if b.opts.submitter != nil {
		if err := b.opts.submitter.Submit(b.opts.handle, &b.frame); err != nil {
			return fmt.Errorf("gpu: submit: %w", err)
		}
	}
	return nil
}

// Resize changes the target size used for pixel-sized geometry.
func (b *Backend) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b.width, b.height = width, height
}

// Close drops frame state. The host device is not owned and stays alive.
func (b *Backend) Close() {
	b.initialized = false
	b.inFrame = false
	b.last = nil
	b.frame = Frame{}
}

// LastFrame returns the most recently completed frame, or nil. The frame is
// reused by the next BeginFrame; use Clone to keep it.
func (b *Backend) LastFrame() *Frame {
	return b.last
}

// Pipeline returns the pipeline description chosen in Init.
func (b *Backend) Pipeline() PipelineDesc {
	return b.pipeline
}

// toPixel maps a figure-normalized point to y-up pixel space.
func (b *Backend) toPixel(p [2]float32) stroke.Point {
	return stroke.Point{X: p[0] * float32(b.width), Y: p[1] * float32(b.height)}
}

// viewport returns the target bounds in y-up pixels.
func (b *Backend) viewport() stroke.Box {
	return stroke.Box{MaxX: float32(b.width), MaxY: float32(b.height)}
}

// toNDC maps a y-up pixel point to normalized device coordinates.
func (b *Backend) toNDC(p stroke.Point) (float32, float32) {
	return p.X/float32(b.width)*2 - 1, p.Y/float32(b.height)*2 - 1
}

func (b *Backend) addLine(l *pltrs.LineBatch) {
	if len(l.Vertices) < 2 {
		return
	}
	width := l.Width
	if !(width > 0) {
		width = defaultLineWidth
	}
	width *= b.dpi

	b.pts = b.pts[:0]
	for _, v := range l.Vertices {
		b.pts = append(b.pts, b.toPixel(v))
	}
	var polys []stroke.Polygon
	for _, run := range stroke.ClipPolyline(b.pts, b.viewport().Grow(width)) {
		polys = append(polys, stroke.Polyline(run, width, b.opts.roundJoins)...)
	}
	b.emit(pltrs.KindLine, polys, l.Color)
}

func (b *Backend) addMarkers(m *pltrs.MarkerBatch) {
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
	b.emit(pltrs.KindScatter, polys, m.Color)
}

func (b *Backend) addBars(bar *pltrs.BarBatch) {
	vp := b.viewport().Grow(1)
	polys := make([]stroke.Polygon, 0, len(bar.Rects))
	for _, r := range bar.Rects {
		p0 := b.toPixel([2]float32{r.X, r.Y})
		p1 := b.toPixel([2]float32{r.X + r.W, r.Y + r.H})
		if q := stroke.ClipRect(p0.X, p0.Y, p1.X, p1.Y, vp); q != nil {
			polys = append(polys, q)
		}
	}
	b.emit(pltrs.KindBar, polys, bar.Color)
}

// emit fans polys into triangles and appends them as one draw. Polygons
// with a non-finite point are dropped.
func (b *Backend) emit(kind pltrs.NodeKind, polys []stroke.Polygon, c pltrs.Color) {
	pc := c.Premultiply()
	b.verts = b.verts[:0]
	for _, p := range polys {
		if !finitePolygon(p) {
			continue
		}
		for _, tri := range stroke.Fan(p) {
			for _, q := range tri {
				x, y := b.toNDC(q)
				b.verts = append(b.verts, Vertex{X: x, Y: y, R: pc[0], G: pc[1], B: pc[2], A: pc[3]})
			}
		}
	}
	if len(b.verts) == 0 {
		return
	}

	first := b.frame.VertexCount()
	b.frame.Vertices = PackVertices(b.frame.Vertices, b.verts)
	b.frame.Draws = append(b.frame.Draws, Draw{
		Kind:        kind,
		FirstVertex: first,
		VertexCount: uint32(len(b.verts)), //nolint:gosec // bounded by batch size
	})
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
