package gpu

import "github.com/OliverKKY/pltrs/backend"

func init() {
	backend.Register(backend.BackendGPU, func() backend.RenderBackend {
		return New()
	})
}
