package gpu

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

//go:embed shaders/plot.wgsl
var plotShaderSource string

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ErrShaderCompile is returned when the embedded WGSL fails to compile.
var ErrShaderCompile = errors.New("gpu: shader compilation failed")

var (
	shaderOnce  sync.Once
	shaderSPIRV []byte
	shaderErr   error
)

// ShaderSource returns the embedded WGSL source.
func ShaderSource() string {
	return plotShaderSource
}

// CompileShader compiles the embedded WGSL to SPIR-V. The result is cached.
func CompileShader() ([]byte, error) {
	shaderOnce.Do(func() {
		spirv, err := naga.Compile(plotShaderSource)
		if err != nil {
			shaderErr = fmt.Errorf("%w: %w", ErrShaderCompile, err)
			return
		}
		shaderSPIRV = spirv
	})
	return shaderSPIRV, shaderErr
}

// PipelineDesc describes the render pipeline frames are recorded against.
type PipelineDesc struct {
	// SPIRV is the compiled shader module.
	SPIRV []byte

	VertexEntry   string
	FragmentEntry string

	Layout    []gputypes.VertexBufferLayout
	Primitive gputypes.PrimitiveState

	// Format is the color attachment format.
	Format gputypes.TextureFormat
}

func newPipelineDesc(spirv []byte, format gputypes.TextureFormat) PipelineDesc {
	return PipelineDesc{
		SPIRV:         spirv,
		VertexEntry:   VertexEntryPoint,
		FragmentEntry: FragmentEntryPoint,
		Layout:        VertexLayout(),
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Format: format,
	}
}
