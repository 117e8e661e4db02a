package term

import "github.com/OliverKKY/pltrs/backend"

func init() {
	backend.Register(backend.BackendTerm, func() backend.RenderBackend {
		return New()
	})
}
