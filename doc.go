// Package compress provides a pluggable compression subsystem with
// integrated concurrent performance instrumentation.
//
// The package composes three layers:
//
//   - backend: the Backend contract with null (passthrough) and zstd
//     implementations, created through a name-keyed Registry with
//     priority-ordered auto-selection
//   - stats: a concurrent statistics engine recording per-operation and
//     per-backend metrics, with JSON/CSV export
//   - Manager (this package): an application-level facade binding a
//     selected backend to a statistics collector
//
// # Basic Usage
//
// Using an explicit manager:
//
//	mgr := compress.NewManager()
//	if err := mgr.Initialize(""); err != nil { // "" auto-selects
//	    return err
//	}
//	defer mgr.Close()
//
//	compressed, err := mgr.Compress(data)
//	if err != nil {
//	    return err
//	}
//	original, err := mgr.Decompress(compressed)
//
// Or the process-wide default instance:
//
//	compressed, err := compress.Compress(data)
//
// Statistics are collected transparently for every operation and can be
// inspected or exported at any time:
//
//	snap := mgr.GlobalStats()
//	fmt.Printf("ops=%d success=%.1f%%\n",
//	    snap.TotalCompressions+snap.TotalDecompressions, snap.SuccessRate())
//
//	report, _ := mgr.ExportJSON()
package compress
