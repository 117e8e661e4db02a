package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1)
//
// Total = 24 bytes per vertex.
const VertexStride = 24

// Vertex is one triangle-list vertex.
type Vertex struct {
	X, Y       float32 // Position in normalized device coordinates
	R, G, B, A float32 // Color (premultiplied alpha)
}

// VertexLayout returns the vertex buffer layout matching VertexStride.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}

// PackVertices appends the little-endian encoding of verts to dst.
func PackVertices(dst []byte, verts []Vertex) []byte {
	off := len(dst)
	dst = append(dst, make([]byte, len(verts)*VertexStride)...)
	for _, v := range verts {
		writeVertex(dst[off:off+VertexStride], v)
		off += VertexStride
	}
	return dst
}

// UnpackVertex decodes the vertex at index i of a packed buffer.
func UnpackVertex(buf []byte, i int) Vertex {
	b := buf[i*VertexStride : (i+1)*VertexStride]
	f := func(o int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[o : o+4]))
	}
	return Vertex{X: f(0), Y: f(4), R: f(8), G: f(12), B: f(16), A: f(20)}
}

func writeVertex(buf []byte, v Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.R))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.G))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.B))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.A))
}
