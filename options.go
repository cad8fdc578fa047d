package compress

import (
	"go.uber.org/zap"

	"github.com/goethe-engine/compress/backend"
	"github.com/goethe-engine/compress/stats"
)

// Option configures a Manager during construction.
type Option func(*Manager)

// WithRegistry replaces the default backend registry, allowing callers to
// register custom backends or remove built-in ones.
func WithRegistry(registry *backend.Registry) Option {
	return func(m *Manager) {
		m.registry = registry
	}
}

// WithCollector shares an existing statistics collector instead of creating
// a fresh one, so multiple managers can aggregate into the same report.
func WithCollector(collector *stats.Collector) Option {
	return func(m *Manager) {
		m.collector = collector
	}
}

// WithLogger sets the logger used for backend lifecycle events. The default
// is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}
