// Package backend defines the boundary between the pltrs scene pipeline and
// the devices that draw it.
//
// A RenderBackend receives a *pltrs.Figure once per frame, builds batches
// with pltrs.BuildBatches and draws them. The core never imports a backend.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// Import the backend packages you want to make available:
//
//	import (
//		_ "github.com/OliverKKY/pltrs/backend/gpu"
//		_ "github.com/OliverKKY/pltrs/backend/raster"
//	)
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b, err := backend.InitNamed(backend.BackendRaster, backend.DescFromSize(fig.Size))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
// # Frames
//
// DrawFrame is the explicit per-frame pull:
//
//	for running {
//		if err := backend.DrawFrame(b, fig); err != nil {
//			log.Print(err)
//		}
//	}
//
// # Available Backends
//
//   - "raster": CPU rasterizer into an *image.RGBA (backend/raster)
//   - "gpu": triangle-list frame builder for a host GPU device (backend/gpu)
//   - "term": braille terminal preview (backend/term)
//
// The desktop window in backend/window drives the raster backend and is not
// registered.
package backend
