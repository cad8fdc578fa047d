package compress

import (
	"sync"

	"go.uber.org/zap"

	"github.com/goethe-engine/compress/backend"
	"github.com/goethe-engine/compress/stats"
)

// Manager is the application-level facade over backend selection and
// statistics. It owns one currently-selected backend (wrapped with
// instrumentation), the registry used to create backends, and the
// statistics collector the operations record into.
//
// A read-write lock guards the backend handle: operations take the read
// lock, SwitchBackend takes the write lock, so a switch can never free a
// backend out from under an in-flight operation. All methods are safe for
// concurrent use.
type Manager struct {
	registry  *backend.Registry
	collector *stats.Collector
	logger    *zap.Logger

	mu          sync.RWMutex
	backend     *backend.Instrumented
	initialized bool
}

// NewManager creates a Manager with the default registry, a fresh
// statistics collector, and no logging, unless overridden by options. The
// manager must be initialized before use.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		registry:  backend.NewDefaultRegistry(),
		collector: stats.NewCollector(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Initialize selects and constructs the manager's backend: an empty name
// auto-selects the best available backend, otherwise the named backend is
// constructed. Initializing an already-initialized manager replaces its
// backend.
func (m *Manager) Initialize(backendName string) error {
	var (
		b   backend.Backend
		err error
	)
	if backendName == "" {
		b, err = m.registry.NewBest()
	} else {
		b, err = m.registry.New(backendName)
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	prev := m.backend
	m.backend = backend.WithStats(b, m.collector)
	m.initialized = true
	m.mu.Unlock()

	if prev != nil {
		prev.Close()
	}

	m.logger.Info("compression backend initialized",
		zap.String("backend", b.Name()),
		zap.String("version", b.Version()))

	return nil
}

// Initialized reports whether Initialize has succeeded.
func (m *Manager) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// SwitchBackend attempts to switch to the named backend and reports whether
// the switch occurred. On failure the previous backend is kept and false is
// returned; availability is never downgraded by a bad request. Callers that
// need the failure reason can probe the registry directly.
func (m *Manager) SwitchBackend(backendName string) bool {
	b, err := m.registry.New(backendName)
	if err != nil {
		m.logger.Warn("backend switch failed, keeping current backend",
			zap.String("requested", backendName),
			zap.Error(err))

		return false
	}

	m.mu.Lock()
	prev := m.backend
	m.backend = backend.WithStats(b, m.collector)
	m.initialized = true
	m.mu.Unlock()

	if prev != nil {
		prev.Close()
	}

	m.logger.Info("compression backend switched", zap.String("backend", b.Name()))

	return true
}

// Compress compresses data with the current backend, recording statistics.
func (m *Manager) Compress(data []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return nil, backend.Errorf("compression manager not initialized")
	}

	return m.backend.Compress(data)
}

// Decompress decompresses data with the current backend, recording
// statistics.
func (m *Manager) Decompress(data []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return nil, backend.Errorf("compression manager not initialized")
	}

	return m.backend.Decompress(data)
}

// CompressString compresses the raw bytes of s.
func (m *Manager) CompressString(s string) ([]byte, error) {
	return m.Compress([]byte(s))
}

// DecompressToString decompresses data and returns the result as a string.
func (m *Manager) DecompressToString(data []byte) (string, error) {
	out, err := m.Decompress(data)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// SetLevel sets the current backend's compression level.
func (m *Manager) SetLevel(level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return backend.Errorf("compression manager not initialized")
	}

	return m.backend.SetLevel(level)
}

// Level returns the current backend's compression level.
func (m *Manager) Level() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return 0, backend.Errorf("compression manager not initialized")
	}

	return m.backend.Level(), nil
}

// SetOptions replaces the current backend's options.
func (m *Manager) SetOptions(opts backend.Options) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return backend.Errorf("compression manager not initialized")
	}

	return m.backend.SetOptions(opts)
}

// Options returns a copy of the current backend's options.
func (m *Manager) Options() (backend.Options, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return backend.Options{}, backend.Errorf("compression manager not initialized")
	}

	return m.backend.Options(), nil
}

// BackendName returns the current backend's name, or "uninitialized".
func (m *Manager) BackendName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return "uninitialized"
	}

	return m.backend.Name()
}

// BackendVersion returns the current backend's version, or "unknown".
func (m *Manager) BackendVersion() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return "unknown"
	}

	return m.backend.Version()
}

// AvailableBackends returns the sorted names of all registered-and-available
// backends.
func (m *Manager) AvailableBackends() []string {
	return m.registry.AvailableNames()
}

// SetStatisticsEnabled turns statistics collection on or off.
func (m *Manager) SetStatisticsEnabled(enabled bool) {
	m.collector.SetEnabled(enabled)
}

// StatisticsEnabled reports whether statistics collection is active.
func (m *Manager) StatisticsEnabled() bool {
	return m.collector.Enabled()
}

// Stats returns a snapshot for the current backend. An uninitialized
// manager yields a zero snapshot.
func (m *Manager) Stats() stats.BackendStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return stats.BackendStats{}
	}

	return m.collector.BackendStats(m.backend.Name())
}

// GlobalStats returns the aggregate snapshot across all backends.
func (m *Manager) GlobalStats() stats.BackendStats {
	return m.collector.GlobalStats()
}

// ResetStats zeroes the current backend's statistics.
func (m *Manager) ResetStats() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.initialized {
		m.collector.ResetBackend(m.backend.Name())
	}
}

// ResetAllStats zeroes every backend's statistics and the global aggregate.
func (m *Manager) ResetAllStats() {
	m.collector.ResetAll()
}

// ExportJSON renders the statistics report as indented JSON.
func (m *Manager) ExportJSON() ([]byte, error) {
	return m.collector.ExportJSON()
}

// ExportCSV renders the statistics report as CSV.
func (m *Manager) ExportCSV() ([]byte, error) {
	return m.collector.ExportCSV()
}

// Collector returns the manager's statistics collector for direct recording
// or inspection.
func (m *Manager) Collector() *stats.Collector {
	return m.collector
}

// Close releases the current backend. The manager returns to the
// uninitialized state and may be re-initialized.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil
	}

	err := m.backend.Close()
	m.backend = nil
	m.initialized = false

	return err
}
