package backend

import (
	"sort"
	"sync"
)

// autoSelectPriority is the fixed order NewBest walks, best first. The lz4
// and zlib entries are forward-compatibility placeholders; no driver is
// registered for them today, so auto-selection skips them.
var autoSelectPriority = []string{"zstd", "lz4", "zlib", "null"}

// Driver describes how a registry creates and probes one backend kind.
// Probe answers availability without constructing a backend, so registries
// can enumerate cheap availability information even for backends that are
// expensive to build.
type Driver struct {
	// New constructs a ready-to-use backend.
	New func() (Backend, error)

	// Probe reports whether New is expected to succeed.
	Probe func() bool
}

// Registry maps backend names to Drivers and auto-selects the best
// available backend. Name matching is case-sensitive. A Registry is safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]Driver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{drivers: make(map[string]Driver)}
}

// Register adds a driver under name, overwriting any prior registration for
// that name.
func (r *Registry) Register(name string, driver Driver) {
	r.mu.Lock()
	r.drivers[name] = driver
	r.mu.Unlock()
}

// New constructs the named backend. It fails with a *CompressionError when
// the name is unknown, construction fails, or the constructed backend
// reports itself unavailable.
func (r *Registry) New(name string) (Backend, error) {
	r.mu.RLock()
	driver, ok := r.drivers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, Errorf("unknown compression backend: %q", name)
	}

	b, err := driver.New()
	if err != nil {
		return nil, Errorf("create compression backend %q: %w", name, err)
	}
	if !b.Available() {
		b.Close()
		return nil, Errorf("compression backend %q is not available", name)
	}

	return b, nil
}

// NewBest constructs the first available backend in priority order
// (zstd, lz4, zlib, null). It fails when no registered backend is
// available.
func (r *Registry) NewBest() (Backend, error) {
	for _, name := range autoSelectPriority {
		if r.Available(name) {
			return r.New(name)
		}
	}

	return nil, Errorf("no compression backends are available")
}

// Available reports whether the named backend is registered and its probe
// succeeds.
func (r *Registry) Available(name string) bool {
	r.mu.RLock()
	driver, ok := r.drivers[name]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	return driver.Probe()
}

// Names returns all registered backend names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)

	return names
}

// AvailableNames returns the sorted names of all registered backends whose
// probe succeeds.
func (r *Registry) AvailableNames() []string {
	available := make([]string, 0, 2)
	for _, name := range r.Names() {
		if r.Available(name) {
			available = append(available, name)
		}
	}

	return available
}
