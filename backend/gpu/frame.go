package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/OliverKKY/pltrs"
)

// Draw is a contiguous vertex range produced from one batch.
type Draw struct {
	Kind        pltrs.NodeKind
	FirstVertex uint32
	VertexCount uint32
}

// Frame is everything a host needs to record one render pass.
type Frame struct {
	Width, Height int
	Format        gputypes.TextureFormat

	LoadOp     gputypes.LoadOp
	StoreOp    gputypes.StoreOp
	ClearValue gputypes.Color

	// Vertices holds packed triangle-list vertices (VertexStride bytes each).
	Vertices []byte
	Draws    []Draw
}

// VertexCount returns the number of vertices in the frame.
func (f *Frame) VertexCount() uint32 {
	return uint32(len(f.Vertices) / VertexStride) //nolint:gosec // bounded by buffer size
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Vertices = append([]byte(nil), f.Vertices...)
	c.Draws = append([]Draw(nil), f.Draws...)
	return &c
}

func (f *Frame) reset() {
	f.Vertices = f.Vertices[:0]
	f.Draws = f.Draws[:0]
}

// Submitter records frames on the host GPU.
//
// Prepare is called once from Init with the pipeline description; Submit is
// called from every EndFrame. The frame is reused afterwards, so Submit must
// copy or upload what it needs before returning.
type Submitter interface {
	Prepare(handle DeviceHandle, pipeline PipelineDesc) error
	Submit(handle DeviceHandle, frame *Frame) error
}
