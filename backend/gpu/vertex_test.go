package gpu

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestPackVertices(t *testing.T) {
	verts := []Vertex{
		{X: -1, Y: 1, R: 0.1, G: 0.2, B: 0.3, A: 1},
		{X: 0.5, Y: -0.25, R: 1, G: 1, B: 1, A: 0.5},
	}
	buf := PackVertices([]byte{0xAA}, verts)

	if len(buf) != 1+2*VertexStride {
		t.Fatalf("len(buf) = %d, want %d", len(buf), 1+2*VertexStride)
	}
	if buf[0] != 0xAA {
		t.Error("PackVertices should append, not overwrite")
	}
	for i, want := range verts {
		if got := UnpackVertex(buf[1:], i); got != want {
			t.Errorf("vertex %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("len(VertexLayout()) = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want Vertex", l.StepMode)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(l.Attributes))
	}
	pos, col := l.Attributes[0], l.Attributes[1]
	if pos.Format != gputypes.VertexFormatFloat32x2 || pos.Offset != 0 || pos.ShaderLocation != 0 {
		t.Errorf("position attribute = %+v", pos)
	}
	if col.Format != gputypes.VertexFormatFloat32x4 || col.Offset != 8 || col.ShaderLocation != 1 {
		t.Errorf("color attribute = %+v", col)
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
	if hasDevice(handle) || hasDevice(nil) {
		t.Error("hasDevice should be false without a device")
	}

	// DeviceHandle is an alias, so any gpucontext provider is accepted.
	acceptProvider := func(_ gpucontext.DeviceProvider) {}
	acceptProvider(handle)
}

func TestFrameClone(t *testing.T) {
	f := &Frame{Width: 2, Vertices: []byte{1, 2, 3}, Draws: []Draw{{VertexCount: 3}}}
	c := f.Clone()
	c.Vertices[0] = 9
	c.Draws[0].VertexCount = 7
	if f.Vertices[0] != 1 || f.Draws[0].VertexCount != 3 {
		t.Error("Clone should not share buffers")
	}
	if c.Width != 2 {
		t.Errorf("Clone Width = %d, want 2", c.Width)
	}
}
