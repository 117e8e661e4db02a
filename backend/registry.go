package backend

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/OliverKKY/pltrs"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() RenderBackend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
	// Priority order for backend selection (first available wins).
	// GPU > Raster > Term (terminal output is a preview, never a default).
	backendPriority = []string{BackendGPU, BackendRaster, BackendTerm}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the sorted names of registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) RenderBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend based on priority.
// Priority order: gpu > raster > term, then any other registered backend
// in name order. Returns nil if no backends are registered.
func Default() RenderBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	// Fallback: first available in name order, so selection is stable.
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if b := backends[name](); b != nil {
			return b
		}
	}

	return nil
}

// MustDefault returns the default backend or panics.
func MustDefault() RenderBackend {
	b := Default()
	if b == nil {
		panic("backend: no backend available")
	}
	return b
}

// InitDefault creates the default backend and initializes it for desc.
func InitDefault(desc RenderTargetDesc) (RenderBackend, error) {
	b := Default()
	if b == nil {
		return nil, ErrBackendNotAvailable
	}
	return initBackend(b, desc)
}

// InitNamed creates the named backend and initializes it for desc.
func InitNamed(name string, desc RenderTargetDesc) (RenderBackend, error) {
	b := Get(name)
	if b == nil {
		pltrs.Logger().Warn("backend: unknown backend requested", slog.String("name", name))
		return nil, ErrBackendNotAvailable
	}
	return initBackend(b, desc)
}

func initBackend(b RenderBackend, desc RenderTargetDesc) (RenderBackend, error) {
	if err := b.Init(desc); err != nil {
		return nil, err
	}
	pltrs.Logger().Info("backend: initialized",
		slog.String("name", b.Name()),
		slog.Int("width", desc.Width),
		slog.Int("height", desc.Height))
	return b, nil
}
