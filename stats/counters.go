package stats

import "sync/atomic"

// backendCounters is the mutable, concurrency-safe aggregate for one backend
// (or for the global total). Each field is independently atomic; there is no
// cross-field atomicity, so a concurrent reader may observe some fields
// updated before others. For each operation kind, successful + failed
// converges to total.
type backendCounters struct {
	name    string
	version string

	totalCompressions        atomic.Uint64
	totalDecompressions      atomic.Uint64
	successfulCompressions   atomic.Uint64
	successfulDecompressions atomic.Uint64
	failedCompressions       atomic.Uint64
	failedDecompressions     atomic.Uint64

	totalInputSize        atomic.Uint64
	totalOutputSize       atomic.Uint64
	totalCompressedSize   atomic.Uint64 // output bytes of successful compressions
	totalDecompressedSize atomic.Uint64 // output bytes of successful decompressions

	compressionTimeNs   atomic.Uint64
	decompressionTimeNs atomic.Uint64
}

func (c *backendCounters) recordCompression(op OperationStats) {
	c.totalCompressions.Add(1)
	c.totalInputSize.Add(op.InputSize)
	c.totalOutputSize.Add(op.OutputSize)
	c.compressionTimeNs.Add(uint64(op.Duration.Nanoseconds()))

	if op.Success {
		c.successfulCompressions.Add(1)
		c.totalCompressedSize.Add(op.OutputSize)
	} else {
		c.failedCompressions.Add(1)
	}
}

func (c *backendCounters) recordDecompression(op OperationStats) {
	c.totalDecompressions.Add(1)
	c.totalInputSize.Add(op.InputSize)
	c.totalOutputSize.Add(op.OutputSize)
	c.decompressionTimeNs.Add(uint64(op.Duration.Nanoseconds()))

	if op.Success {
		c.successfulDecompressions.Add(1)
		c.totalDecompressedSize.Add(op.OutputSize)
	} else {
		c.failedDecompressions.Add(1)
	}
}

// reset zeroes every counter. Each store is independent, so a concurrent
// recorder may interleave with the reset; the same non-atomicity caveat as
// recording applies.
func (c *backendCounters) reset() {
	c.totalCompressions.Store(0)
	c.totalDecompressions.Store(0)
	c.successfulCompressions.Store(0)
	c.successfulDecompressions.Store(0)
	c.failedCompressions.Store(0)
	c.failedDecompressions.Store(0)
	c.totalInputSize.Store(0)
	c.totalOutputSize.Store(0)
	c.totalCompressedSize.Store(0)
	c.totalDecompressedSize.Store(0)
	c.compressionTimeNs.Store(0)
	c.decompressionTimeNs.Store(0)
}

// snapshot copies the current counter values into an immutable BackendStats.
func (c *backendCounters) snapshot() BackendStats {
	return BackendStats{
		BackendName:              c.name,
		BackendVersion:           c.version,
		TotalCompressions:        c.totalCompressions.Load(),
		TotalDecompressions:      c.totalDecompressions.Load(),
		SuccessfulCompressions:   c.successfulCompressions.Load(),
		SuccessfulDecompressions: c.successfulDecompressions.Load(),
		FailedCompressions:       c.failedCompressions.Load(),
		FailedDecompressions:     c.failedDecompressions.Load(),
		TotalInputSize:           c.totalInputSize.Load(),
		TotalOutputSize:          c.totalOutputSize.Load(),
		TotalCompressedSize:      c.totalCompressedSize.Load(),
		TotalDecompressedSize:    c.totalDecompressedSize.Load(),
		CompressionTimeNs:        c.compressionTimeNs.Load(),
		DecompressionTimeNs:      c.decompressionTimeNs.Load(),
	}
}

// BackendStats is an immutable snapshot of one backend's aggregate counters
// (or of the global aggregate, in which case BackendName and BackendVersion
// are empty).
//
// Snapshots are produced by Collector methods; the derived metrics below are
// computed over the snapshot values and are stable for the lifetime of the
// value.
type BackendStats struct {
	BackendName    string `json:"backend_name,omitempty"`
	BackendVersion string `json:"backend_version,omitempty"`

	TotalCompressions        uint64 `json:"total_compressions"`
	TotalDecompressions      uint64 `json:"total_decompressions"`
	SuccessfulCompressions   uint64 `json:"successful_compressions"`
	SuccessfulDecompressions uint64 `json:"successful_decompressions"`
	FailedCompressions       uint64 `json:"failed_compressions"`
	FailedDecompressions     uint64 `json:"failed_decompressions"`

	TotalInputSize        uint64 `json:"total_input_size"`
	TotalOutputSize       uint64 `json:"total_output_size"`
	TotalCompressedSize   uint64 `json:"total_compressed_size"`
	TotalDecompressedSize uint64 `json:"total_decompressed_size"`

	CompressionTimeNs   uint64 `json:"total_compression_time_ns"`
	DecompressionTimeNs uint64 `json:"total_decompression_time_ns"`
}

// AverageCompressionRatio returns total successful compressed output divided
// by total input, or 0 when no compression succeeded or no input was seen.
func (s BackendStats) AverageCompressionRatio() float64 {
	if s.SuccessfulCompressions == 0 || s.TotalInputSize == 0 {
		return 0.0
	}

	return float64(s.TotalCompressedSize) / float64(s.TotalInputSize)
}

// AverageCompressionRate returns the average size reduction percentage,
// (1 - AverageCompressionRatio()) * 100.
func (s BackendStats) AverageCompressionRate() float64 {
	return (1.0 - s.AverageCompressionRatio()) * 100.0
}

// AverageCompressionThroughputMBps returns cumulative compression input in
// decimal megabytes divided by cumulative compression time, or 0 when no
// compression succeeded or no time was accumulated.
func (s BackendStats) AverageCompressionThroughputMBps() float64 {
	if s.SuccessfulCompressions == 0 || s.CompressionTimeNs == 0 {
		return 0.0
	}

	seconds := float64(s.CompressionTimeNs) / 1e9

	return float64(s.TotalInputSize) / 1e6 / seconds
}

// AverageDecompressionThroughputMBps returns cumulative successful
// decompressed output in decimal megabytes divided by cumulative
// decompression time, or 0 when no decompression succeeded or no time was
// accumulated.
func (s BackendStats) AverageDecompressionThroughputMBps() float64 {
	if s.SuccessfulDecompressions == 0 || s.DecompressionTimeNs == 0 {
		return 0.0
	}

	seconds := float64(s.DecompressionTimeNs) / 1e9

	return float64(s.TotalDecompressedSize) / 1e6 / seconds
}

// SuccessRate returns the percentage of operations (compressions and
// decompressions combined) that succeeded. A backend with no recorded
// operations reports 100.
func (s BackendStats) SuccessRate() float64 {
	total := s.TotalCompressions + s.TotalDecompressions
	if total == 0 {
		return 100.0
	}

	successful := s.SuccessfulCompressions + s.SuccessfulDecompressions

	return float64(successful) / float64(total) * 100.0
}
