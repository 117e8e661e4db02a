package backend

import (
	"errors"

	"github.com/OliverKKY/pltrs"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrInvalidDimensions is returned when a target width or height is not positive.
	ErrInvalidDimensions = errors.New("backend: invalid dimensions")

	// ErrNilFigure is returned when DrawScene or DrawFrame receives a nil figure.
	ErrNilFigure = errors.New("backend: nil figure")
)

// Backend name constants.
const (
	// BackendRaster is the name of the CPU rasterizer backend.
	BackendRaster = "raster"
	// BackendGPU is the name of the GPU frame builder backend.
	BackendGPU = "gpu"
	// BackendTerm is the name of the braille terminal backend.
	BackendTerm = "term"
)

// RenderTargetDesc describes the surface a backend draws to.
type RenderTargetDesc struct {
	// Width and Height are the target size in backend units
	// (pixels for raster and GPU backends, cells for the terminal).
	Width  int
	Height int

	// DPI scales pixel-sized styling such as line widths and marker sizes.
	// Zero is treated as 1.
	DPI float32
}

// DescFromSize returns a target description matching a figure size.
func DescFromSize(s pltrs.Size) RenderTargetDesc {
	return RenderTargetDesc{
		Width:  int(s.Width),
		Height: int(s.Height),
		DPI:    s.DPI,
	}
}

// Scale returns DPI, defaulting to 1 when unset.
func (d RenderTargetDesc) Scale() float32 {
	if d.DPI <= 0 {
		return 1
	}
	return d.DPI
}

// Validate reports ErrInvalidDimensions for non-positive sizes.
func (d RenderTargetDesc) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// RenderBackend consumes figures and turns their batches into output.
//
// The core pltrs package knows nothing about backends: a backend receives a
// *pltrs.Figure each frame, calls pltrs.BuildBatches itself and draws the
// result. Backends must be registered via Register() and are selected via
// Get() or Default().
//
// A frame is BeginFrame, one or more DrawScene calls and EndFrame; DrawFrame
// runs that sequence for one figure. Backends are NOT safe for concurrent
// use, and a figure must not be mutated while DrawScene reads it.
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "raster", "gpu").
	Name() string

	// Init prepares the backend for a target of the given size.
	// It must be called before any frame.
	Init(desc RenderTargetDesc) error

	// BeginFrame starts a frame, clearing the target to clear.
	BeginFrame(clear pltrs.Color)

	// DrawScene batches the figure and draws every batch in order.
	DrawScene(fig *pltrs.Figure) error

	// EndFrame finishes the frame and presents or publishes the result.
	EndFrame() error

	// Resize changes the target size. Contents are not preserved.
	Resize(width, height int)

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()
}
