package backend

import (
	"fmt"

	"github.com/OliverKKY/pltrs"
)

// DrawFrame renders one complete frame of fig: BeginFrame with the figure's
// clear color, DrawScene and EndFrame.
//
// This is the per-frame entry point a host event loop calls; nothing in the
// core keeps frame state between calls.
func DrawFrame(b RenderBackend, fig *pltrs.Figure) error {
	if fig == nil {
		return ErrNilFigure
	}

	b.BeginFrame(fig.ClearColor)
	if err := b.DrawScene(fig); err != nil {
		// Still close the frame so the backend is ready for the next one.
		_ = b.EndFrame()
		return fmt.Errorf("backend: %s: draw scene: %w", b.Name(), err)
	}
	if err := b.EndFrame(); err != nil {
		return fmt.Errorf("backend: %s: end frame: %w", b.Name(), err)
	}
	return nil
}
