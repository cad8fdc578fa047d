package backend

// NewDefaultRegistry creates a registry with the built-in backends
// registered: zstd and null. The null backend is the unconditional
// fallback; zstd is pure Go and available on every platform this module
// compiles for.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("null", Driver{
		New:   func() (Backend, error) { return NewNullBackend(), nil },
		Probe: func() bool { return true },
	})

	r.Register("zstd", Driver{
		New:   func() (Backend, error) { return NewZstdBackend() },
		Probe: func() bool { return true },
	})

	return r
}
