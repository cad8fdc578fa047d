// Package stats implements concurrent performance instrumentation for
// compression backends.
//
// The package tracks per-operation measurements (sizes, duration, outcome)
// and aggregates them into per-backend and global counters that are safe for
// concurrent recording. Counters are independently atomic: a reader may
// observe a partially-updated snapshot, but every counter is eventually
// consistent and successful + failed always converges to the total for each
// operation kind.
//
// # Core Types
//
//   - Timer: monotonic high-resolution duration measurement
//   - OperationStats: one operation's sizes, duration, and outcome
//   - Collector: per-backend and global aggregation with JSON/CSV export
//   - BackendStats: immutable snapshot of one backend's aggregate counters
//   - Scope: guard that records exactly one operation per lifetime
//
// # Basic Usage
//
// Recording through a scope (the usual path, driven by the backend
// instrumentation wrapper):
//
//	collector := stats.NewCollector()
//	scope := stats.NewScope(collector, "zstd", "1.18.0", stats.OpCompression)
//	defer scope.Close()
//
//	out, err := codec.Compress(data)
//	scope.SetSizes(uint64(len(data)), uint64(len(out)))
//	scope.Complete(err)
//
// If the operation panics or returns before Complete is called, Close
// records a failure, so every scope contributes exactly one record.
//
// Querying:
//
//	snap := collector.BackendStats("zstd")
//	fmt.Printf("ratio=%.2f rate=%.1f%%\n",
//	    snap.AverageCompressionRatio(), snap.AverageCompressionRate())
package stats
