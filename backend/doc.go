// Package backend defines the pluggable compression backend contract and
// its built-in implementations.
//
// A Backend compresses and decompresses byte buffers and exposes metadata,
// a compression level, and an Options struct. Two backends ship with the
// module:
//
//   - null: byte-copy passthrough, always available
//   - zstd: Zstandard via github.com/klauspost/compress/zstd
//
// Backends are created through a Registry, which maps names to Drivers and
// auto-selects the best available backend from a fixed priority order. The
// Instrumented wrapper adds per-operation statistics recording around any
// Backend without changing its error behavior.
//
// # Basic Usage
//
//	registry := backend.NewDefaultRegistry()
//	b, err := registry.NewBest()
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//
//	compressed, err := b.Compress(data)
//	if err != nil {
//	    return err
//	}
//
// All backend failures are reported as *CompressionError.
package backend
