package compress

import "sync"

var (
	defaultOnce    sync.Once
	defaultManager *Manager
)

// Default returns the process-wide Manager, creating it on first use. The
// default manager is not initialized automatically; the package-level
// Compress and Decompress helpers initialize it lazily with auto-selection.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultManager = NewManager()
	})

	return defaultManager
}

// Compress compresses data with the default manager, auto-initializing it
// on first use.
func Compress(data []byte) ([]byte, error) {
	m := Default()
	if !m.Initialized() {
		if err := m.Initialize(""); err != nil {
			return nil, err
		}
	}

	return m.Compress(data)
}

// Decompress decompresses data with the default manager, auto-initializing
// it on first use.
func Decompress(data []byte) ([]byte, error) {
	m := Default()
	if !m.Initialized() {
		if err := m.Initialize(""); err != nil {
			return nil, err
		}
	}

	return m.Decompress(data)
}
