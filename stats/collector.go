package stats

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Collector aggregates operation statistics per backend name plus one global
// aggregate updated in lockstep with every record.
//
// The mutex only guards structural mutation of the backend map; counter
// updates use atomic adds, so concurrent recorders never lose updates. The
// per-backend entry is created lazily on the first record for a name and
// lives for the lifetime of the Collector; entries are reset, never removed.
//
// A Collector is an explicit service object: construct one with NewCollector
// and pass it to whatever composes backends. All methods are safe for
// concurrent use.
type Collector struct {
	enabled atomic.Bool

	mu       sync.RWMutex
	backends map[string]*backendCounters
	global   backendCounters
}

// NewCollector creates a Collector with statistics collection enabled.
func NewCollector() *Collector {
	c := &Collector{
		backends: make(map[string]*backendCounters),
	}
	c.enabled.Store(true)

	return c
}

// SetEnabled turns statistics collection on or off. While disabled, record
// calls are no-ops; previously accumulated counters are retained.
func (c *Collector) SetEnabled(enabled bool) {
	c.enabled.Store(enabled)
}

// Enabled reports whether statistics collection is active.
func (c *Collector) Enabled() bool {
	return c.enabled.Load()
}

// RecordCompression records one compression operation for the named backend
// and for the global aggregate. It is a no-op while collection is disabled.
func (c *Collector) RecordCompression(backendName, backendVersion string, op OperationStats) {
	if !c.enabled.Load() {
		return
	}

	counters := c.getOrCreate(backendName, backendVersion)
	counters.recordCompression(op)
	c.global.recordCompression(op)
}

// RecordDecompression records one decompression operation for the named
// backend and for the global aggregate. It is a no-op while collection is
// disabled.
func (c *Collector) RecordDecompression(backendName, backendVersion string, op OperationStats) {
	if !c.enabled.Load() {
		return
	}

	counters := c.getOrCreate(backendName, backendVersion)
	counters.recordDecompression(op)
	c.global.recordDecompression(op)
}

// BackendStats returns a snapshot for the named backend. An unknown name
// yields a zero snapshot carrying only the name.
func (c *Collector) BackendStats(name string) BackendStats {
	c.mu.RLock()
	counters, ok := c.backends[name]
	c.mu.RUnlock()

	if !ok {
		return BackendStats{BackendName: name}
	}

	return counters.snapshot()
}

// BackendNames returns the names of all backends that have recorded at least
// one operation, sorted lexicographically.
func (c *Collector) BackendNames() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.backends))
	for name := range c.backends {
		names = append(names, name)
	}
	c.mu.RUnlock()

	sort.Strings(names)

	return names
}

// GlobalStats returns a snapshot of the aggregate across all backends.
func (c *Collector) GlobalStats() BackendStats {
	return c.global.snapshot()
}

// ResetBackend zeroes the counters for the named backend. Unknown names are
// ignored.
func (c *Collector) ResetBackend(name string) {
	c.mu.RLock()
	counters, ok := c.backends[name]
	c.mu.RUnlock()

	if ok {
		counters.reset()
	}
}

// ResetAll zeroes every backend's counters and the global aggregate.
func (c *Collector) ResetAll() {
	c.mu.RLock()
	for _, counters := range c.backends {
		counters.reset()
	}
	c.mu.RUnlock()

	c.global.reset()
}

// getOrCreate returns the counters for name, creating the entry on first
// use. Fast path takes only the read lock; the write path re-checks under
// the write lock to avoid racing creators.
func (c *Collector) getOrCreate(name, version string) *backendCounters {
	c.mu.RLock()
	counters, ok := c.backends[name]
	c.mu.RUnlock()

	if ok {
		return counters
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if counters, ok = c.backends[name]; !ok {
		counters = &backendCounters{name: name, version: version}
		c.backends[name] = counters
	}

	return counters
}
