package raster

import "github.com/OliverKKY/pltrs/backend"

func init() {
	backend.Register(backend.BackendRaster, func() backend.RenderBackend {
		return New()
	})
}
