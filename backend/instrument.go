package backend

import (
	"github.com/goethe-engine/compress/stats"
)

// Instrumented wraps a Backend with per-operation statistics recording.
//
// When the collector is disabled the wrapped backend is called directly.
// When enabled, every Compress/Decompress opens a stats.Scope, invokes the
// backend, records sizes and the outcome (including the error text on
// failure), and returns the backend's result unchanged. Statistics are a
// side channel: errors are never swallowed or altered by instrumentation,
// and exactly one record is emitted per call regardless of the exit path.
//
// All other Backend methods pass through to the wrapped implementation.
type Instrumented struct {
	Backend

	collector *stats.Collector
}

// WithStats wraps b so its operations are recorded into collector.
func WithStats(b Backend, collector *stats.Collector) *Instrumented {
	return &Instrumented{Backend: b, collector: collector}
}

// Unwrap returns the underlying backend.
func (i *Instrumented) Unwrap() Backend {
	return i.Backend
}

// Compress compresses data, recording the operation when statistics are
// enabled.
func (i *Instrumented) Compress(data []byte) ([]byte, error) {
	if !i.collector.Enabled() {
		return i.Backend.Compress(data)
	}

	scope := stats.NewScope(i.collector, i.Name(), i.Version(), stats.OpCompression)
	defer scope.Close()

	out, err := i.Backend.Compress(data)
	if err != nil {
		scope.SetSizes(uint64(len(data)), 0)
		scope.Complete(err)

		return nil, err
	}

	scope.SetSizes(uint64(len(data)), uint64(len(out)))
	scope.Complete(nil)

	return out, nil
}

// Decompress decompresses data, recording the operation when statistics are
// enabled.
func (i *Instrumented) Decompress(data []byte) ([]byte, error) {
	if !i.collector.Enabled() {
		return i.Backend.Decompress(data)
	}

	scope := stats.NewScope(i.collector, i.Name(), i.Version(), stats.OpDecompression)
	defer scope.Close()

	out, err := i.Backend.Decompress(data)
	if err != nil {
		scope.SetSizes(uint64(len(data)), 0)
		scope.Complete(err)

		return nil, err
	}

	scope.SetSizes(uint64(len(data)), uint64(len(out)))
	scope.Complete(nil)

	return out, nil
}
