package gpu

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend"
)

// surfaceHandle is a device-less provider reporting a surface format.
type surfaceHandle struct {
	NullDeviceHandle
	format gputypes.TextureFormat
}

func (h surfaceHandle) SurfaceFormat() gputypes.TextureFormat { return h.format }

// recordingSubmitter keeps copies of everything it is given.
type recordingSubmitter struct {
	pipeline   *PipelineDesc
	frames     []*Frame
	prepareErr error
	submitErr  error
}

func (s *recordingSubmitter) Prepare(_ DeviceHandle, p PipelineDesc) error {
	s.pipeline = &p
	return s.prepareErr
}

func (s *recordingSubmitter) Submit(_ DeviceHandle, f *Frame) error {
	s.frames = append(s.frames, f.Clone())
	return s.submitErr
}

func unitFigure() *pltrs.Figure {
	fig := pltrs.NewFigure(pltrs.Size{Width: 100, Height: 100, DPI: 1})
	unit := pltrs.Linear([2]float64{0, 1}, [2]float64{0, 1})
	fig.AddAxes(pltrs.NewAxes(pltrs.Rect{X: 0, Y: 0, W: 1, H: 1}, unit, unit))
	return fig
}

func newInitialized(t *testing.T, opts ...Option) *Backend {
	t.Helper()
	b := New(opts...)
	if err := b.Init(backend.RenderTargetDesc{Width: 100, Height: 100}); err != nil {
		if errors.Is(err, ErrShaderCompile) {
			t.Skipf("Skipping: naga limitation: %v", err)
		}
		t.Fatalf("Init() error = %v", err)
	}
	return b
}

func drawFrame(t *testing.T, b *Backend, fig *pltrs.Figure) *Frame {
	t.Helper()
	if err := backend.DrawFrame(b, fig); err != nil {
		t.Fatalf("DrawFrame() error = %v", err)
	}
	f := b.LastFrame()
	if f == nil {
		t.Fatal("LastFrame() = nil after DrawFrame")
	}
	return f
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendGPU) {
		t.Fatal("gpu backend should be registered by init")
	}
	if b := backend.Get(backend.BackendGPU); b == nil || b.Name() != backend.BackendGPU {
		t.Errorf("Get(gpu) = %v", b)
	}
}

func TestNotInitialized(t *testing.T) {
	b := New()
	if err := b.DrawScene(unitFigure()); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("DrawScene() error = %v, want ErrNotInitialized", err)
	}
	if err := b.EndFrame(); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("EndFrame() error = %v, want ErrNotInitialized", err)
	}
	if err := b.Init(backend.RenderTargetDesc{}); !errors.Is(err, backend.ErrInvalidDimensions) {
		t.Errorf("Init(zero) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestFrameClearAndFormat(t *testing.T) {
	tests := []struct {
		name   string
		handle DeviceHandle
		want   gputypes.TextureFormat
	}{
		{"null device", NullDeviceHandle{}, gputypes.TextureFormatRGBA8Unorm},
		{"surface format", surfaceHandle{format: gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newInitialized(t, WithDevice(tt.handle))
			fig := unitFigure()
			fig.ClearColor = pltrs.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
			f := drawFrame(t, b, fig)

			if f.Format != tt.want {
				t.Errorf("Format = %v, want %v", f.Format, tt.want)
			}
			if f.LoadOp != gputypes.LoadOpClear || f.StoreOp != gputypes.StoreOpStore {
				t.Errorf("LoadOp/StoreOp = %v/%v, want Clear/Store", f.LoadOp, f.StoreOp)
			}
			if f.ClearValue.R != 0.25 || f.ClearValue.G != 0.5 || f.ClearValue.B != 0.75 || f.ClearValue.A != 1 {
				t.Errorf("ClearValue = %+v", f.ClearValue)
			}
			if f.Width != 100 || f.Height != 100 {
				t.Errorf("size = %dx%d, want 100x100", f.Width, f.Height)
			}
			if f.VertexCount() != 0 || len(f.Draws) != 0 {
				t.Errorf("empty figure produced %d vertices, %d draws", f.VertexCount(), len(f.Draws))
			}
		})
	}
}

func TestLineVertices(t *testing.T) {
	b := newInitialized(t, WithRoundJoins(false))
	fig := unitFigure()
	fig.Axes[0].Add(pltrs.Line{
		Xs:    []float64{0, 1},
		Ys:    []float64{0.5, 0.5},
		Color: pltrs.Color{R: 1, A: 0.5},
		Width: 4,
	})
	f := drawFrame(t, b, fig)

	if len(f.Draws) != 1 {
		t.Fatalf("len(Draws) = %d, want 1", len(f.Draws))
	}
	d := f.Draws[0]
	if d.Kind != pltrs.KindLine || d.FirstVertex != 0 || d.VertexCount != 6 {
		t.Errorf("Draw = %+v, want line with 6 vertices", d)
	}

	for i := 0; i < int(f.VertexCount()); i++ {
		v := UnpackVertex(f.Vertices, i)
		if v.X < -1-1e-5 || v.X > 1+1e-5 {
			t.Errorf("vertex %d X = %v outside NDC", i, v.X)
		}
		// 4px on a 100px target is 0.08 NDC, centered on y=0.
		if !near(float32(math.Abs(float64(v.Y))), 0.04) {
			t.Errorf("vertex %d Y = %v, want +-0.04", i, v.Y)
		}
		// Premultiplied color.
		if !near(v.R, 0.5) || !near(v.A, 0.5) || v.G != 0 || v.B != 0 {
			t.Errorf("vertex %d color = (%v,%v,%v,%v), want premultiplied red", i, v.R, v.G, v.B, v.A)
		}
	}
}

func TestRoundJoinsAddGeometry(t *testing.T) {
	line := pltrs.Line{Xs: []float64{0.1, 0.5, 0.9}, Ys: []float64{0.2, 0.8, 0.2}, Color: pltrs.Black, Width: 3}

	plain := newInitialized(t, WithRoundJoins(false))
	fig := unitFigure()
	fig.Axes[0].Add(line)
	nPlain := drawFrame(t, plain, fig).VertexCount()

	round := newInitialized(t)
	nRound := drawFrame(t, round, fig).VertexCount()

	if nPlain != 12 {
		t.Errorf("VertexCount without joins = %d, want 12", nPlain)
	}
	if nRound <= nPlain {
		t.Errorf("VertexCount with joins = %d, want > %d", nRound, nPlain)
	}
}

func TestPaintOrderAndRanges(t *testing.T) {
	b := newInitialized(t)
	fig := unitFigure()
	ax := &fig.Axes[0]
	ax.Add(pltrs.Scatter{Xs: []float64{0.5}, Ys: []float64{0.5}, Size: 6, Marker: pltrs.MarkerSquare, Color: pltrs.Red})
	ax.Add(pltrs.Line{Xs: []float64{0, 1}, Ys: []float64{0, 1}, Width: 1, Color: pltrs.Blue})
	ax.Add(pltrs.Bar{Xs: []float64{0.3, 0.7}, Heights: []float64{0.4, 0.6}, Width: 0.1, Color: pltrs.Green})
	f := drawFrame(t, b, fig)

	wantKinds := []pltrs.NodeKind{pltrs.KindBar, pltrs.KindLine, pltrs.KindScatter}
	if len(f.Draws) != len(wantKinds) {
		t.Fatalf("len(Draws) = %d, want %d", len(f.Draws), len(wantKinds))
	}
	var next uint32
	for i, d := range f.Draws {
		if d.Kind != wantKinds[i] {
			t.Errorf("Draws[%d].Kind = %v, want %v", i, d.Kind, wantKinds[i])
		}
		if d.FirstVertex != next {
			t.Errorf("Draws[%d].FirstVertex = %d, want %d", i, d.FirstVertex, next)
		}
		next += d.VertexCount
	}
	if next != f.VertexCount() {
		t.Errorf("draw ranges cover %d vertices, frame has %d", next, f.VertexCount())
	}
	if f.Draws[0].VertexCount != 12 {
		t.Errorf("two bars = %d vertices, want 12", f.Draws[0].VertexCount)
	}
	if f.Draws[2].VertexCount != 6 {
		t.Errorf("one square marker = %d vertices, want 6", f.Draws[2].VertexCount)
	}
}

func TestNonFiniteAndOffscreen(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name      string
		rect      pltrs.Rect
		node      pltrs.Node
		wantVerts uint32
	}{
		{"line to +Inf", pltrs.Rect{}, pltrs.Line{Xs: []float64{0, 1}, Ys: []float64{0.5, inf}, Width: 4}, 0},
		{"line to -Inf", pltrs.Rect{}, pltrs.Line{Xs: []float64{0, 1}, Ys: []float64{0.5, -inf}, Width: 4}, 0},
		{"line to NaN", pltrs.Rect{}, pltrs.Line{Xs: []float64{0, 1}, Ys: []float64{0.5, nan}, Width: 4}, 0},
		{"line split at NaN", pltrs.Rect{}, pltrs.Line{Xs: []float64{0, 0.25, 0.5, 0.75, 1}, Ys: []float64{0.5, 0.5, nan, 0.5, 0.5}, Width: 4}, 12},
		{"line to huge value", pltrs.Rect{}, pltrs.Line{Xs: []float64{0, 1}, Ys: []float64{0.5, 1e12}, Width: 4}, 6},
		{"line far outside both edges", pltrs.Rect{X: -1, Y: -1, W: 3, H: 3}, pltrs.Line{Xs: []float64{-1e6, 1e6}, Ys: []float64{0.5, 0.5}, Width: 4}, 6},
		{"bar with +Inf height", pltrs.Rect{}, pltrs.Bar{Xs: []float64{0.5}, Heights: []float64{inf}, Width: 0.2}, 6},
		{"bar with NaN height", pltrs.Rect{}, pltrs.Bar{Xs: []float64{0.5}, Heights: []float64{nan}, Width: 0.2}, 0},
		{"square markers skip non-finite points", pltrs.Rect{}, pltrs.Scatter{Xs: []float64{nan, 0.25, inf}, Ys: []float64{0.5, 0.75, 0.5}, Size: 6, Marker: pltrs.MarkerSquare}, 6},
		{"offscreen marker", pltrs.Rect{}, pltrs.Scatter{Xs: []float64{-1e9}, Ys: []float64{0.5}, Size: 6, Marker: pltrs.MarkerSquare}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newInitialized(t, WithRoundJoins(false))
			fig := pltrs.NewFigure(pltrs.Size{Width: 100, Height: 100, DPI: 1})
			rect := tt.rect
			if rect == (pltrs.Rect{}) {
				rect = pltrs.Rect{W: 1, H: 1}
			}
			unit := pltrs.Linear([2]float64{0, 1}, [2]float64{0, 1})
			ax := fig.AddAxes(pltrs.NewAxes(rect, unit, unit))
			fig.Axes[ax].Add(tt.node)
			f := drawFrame(t, b, fig)

			if f.VertexCount() != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", f.VertexCount(), tt.wantVerts)
			}
			if tt.wantVerts == 0 && len(f.Draws) != 0 {
				t.Errorf("len(Draws) = %d, want 0 for an empty batch", len(f.Draws))
			}
			for i := 0; i < int(f.VertexCount()); i++ {
				v := UnpackVertex(f.Vertices, i)
				for _, c := range [...]float32{v.X, v.Y} {
					if math.IsNaN(float64(c)) || math.Abs(float64(c)) > 1.5 {
						t.Fatalf("vertex %d = (%v, %v), want finite and near NDC", i, v.X, v.Y)
					}
				}
			}
		})
	}
}

func TestFramesAreRebuilt(t *testing.T) {
	b := newInitialized(t)
	fig := pltrs.DemoLine()
	first := drawFrame(t, b, fig).Clone()
	second := drawFrame(t, b, fig)

	if first.VertexCount() != second.VertexCount() {
		t.Errorf("VertexCount changed between identical frames: %d vs %d", first.VertexCount(), second.VertexCount())
	}
	if string(first.Vertices) != string(second.Vertices) {
		t.Error("identical figures produced different vertex data")
	}
}

func TestResizeAffectsPixelGeometry(t *testing.T) {
	b := newInitialized(t, WithRoundJoins(false))
	fig := unitFigure()
	fig.Axes[0].Add(pltrs.Line{Xs: []float64{0, 1}, Ys: []float64{0.5, 0.5}, Width: 4, Color: pltrs.Black})

	b.Resize(100, 400)
	f := drawFrame(t, b, fig)
	v := UnpackVertex(f.Vertices, 0)
	if !near(float32(math.Abs(float64(v.Y))), 0.01) {
		t.Errorf("after Resize vertex Y = %v, want +-0.01", v.Y)
	}
	if f.Height != 400 {
		t.Errorf("frame Height = %d, want 400", f.Height)
	}
}

func TestSubmitter(t *testing.T) {
	sub := &recordingSubmitter{}
	b := newInitialized(t, WithSubmitter(sub), WithDevice(surfaceHandle{format: gputypes.TextureFormatBGRA8Unorm}))

	if sub.pipeline == nil {
		t.Fatal("Prepare was not called")
	}
	p := sub.pipeline
	if len(p.SPIRV) == 0 {
		t.Error("pipeline SPIR-V is empty")
	}
	if p.VertexEntry != VertexEntryPoint || p.FragmentEntry != FragmentEntryPoint {
		t.Errorf("entry points = %q/%q", p.VertexEntry, p.FragmentEntry)
	}
	if p.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("pipeline Format = %v, want BGRA8Unorm", p.Format)
	}
	if p.Primitive.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology = %v, want TriangleList", p.Primitive.Topology)
	}

	for i := 0; i < 2; i++ {
		drawFrame(t, b, pltrs.DemoLine())
	}
	if len(sub.frames) != 2 {
		t.Fatalf("submitted %d frames, want 2", len(sub.frames))
	}
	if sub.frames[0].VertexCount() == 0 {
		t.Error("submitted frame has no vertices")
	}
}

func TestSubmitterErrors(t *testing.T) {
	prepareErr := errors.New("pipeline rejected")
	b := New(WithSubmitter(&recordingSubmitter{prepareErr: prepareErr}))
	err := b.Init(backend.RenderTargetDesc{Width: 10, Height: 10})
	if errors.Is(err, ErrShaderCompile) {
		t.Skipf("Skipping: naga limitation: %v", err)
	}
	if !errors.Is(err, prepareErr) {
		t.Errorf("Init() error = %v, want prepare error", err)
	}

	submitErr := errors.New("device lost")
	b = newInitialized(t, WithSubmitter(&recordingSubmitter{submitErr: submitErr}))
	if err := backend.DrawFrame(b, pltrs.DemoLine()); !errors.Is(err, submitErr) {
		t.Errorf("DrawFrame() error = %v, want submit error", err)
	}
}

func TestClose(t *testing.T) {
	b := newInitialized(t)
	drawFrame(t, b, pltrs.DemoLine())
	b.Close()
	if b.LastFrame() != nil {
		t.Error("LastFrame() after Close should be nil")
	}
	if err := b.DrawScene(pltrs.DemoLine()); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("DrawScene() after Close error = %v, want ErrNotInitialized", err)
	}
}

func TestShaderSource(t *testing.T) {
	src := ShaderSource()
	for _, entry := range []string{VertexEntryPoint, FragmentEntryPoint} {
		if !strings.Contains(src, "fn "+entry) {
			t.Errorf("shader source missing entry point %q", entry)
		}
	}
}

func TestCompileShader(t *testing.T) {
	spirv, err := CompileShader()
	if err != nil {
		if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileShader() error = %v", err)
	}
	if len(spirv) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	// SPIR-V magic number, little-endian.
	if len(spirv) >= 4 && (spirv[0] != 0x03 || spirv[1] != 0x02 || spirv[2] != 0x23 || spirv[3] != 0x07) {
		t.Errorf("SPIR-V magic = % x, want 03 02 23 07", spirv[:4])
	}
}
