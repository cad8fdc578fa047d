package stats

import "time"

// OperationStats captures the outcome of a single compress or decompress
// call: input/output sizes in bytes, wall duration, and success state.
//
// The derived metrics treat degenerate inputs conservatively: a zero input
// size yields a ratio of 0, and a zero duration yields zero throughput.
type OperationStats struct {
	InputSize    uint64
	OutputSize   uint64
	Duration     time.Duration
	Success      bool
	ErrorMessage string
}

// CompressionRatio returns output size divided by input size.
//
// Values below 1.0 indicate the data shrank; 0 is returned when the input
// size is zero.
func (s OperationStats) CompressionRatio() float64 {
	if s.InputSize == 0 {
		return 0.0
	}

	return float64(s.OutputSize) / float64(s.InputSize)
}

// CompressionRate returns the size reduction as a percentage:
// (1 - ratio) * 100. An input of 100 bytes compressed to 25 bytes has a
// rate of 75.0.
func (s OperationStats) CompressionRate() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// ThroughputMBps returns the input throughput in decimal megabytes
// (10^6 bytes) per second, or 0 when the duration is zero.
func (s OperationStats) ThroughputMBps() float64 {
	if s.Duration == 0 {
		return 0.0
	}

	return float64(s.InputSize) / 1e6 / s.Duration.Seconds()
}

// ThroughputMiBps returns the input throughput in binary mebibytes
// (2^20 bytes) per second, or 0 when the duration is zero.
func (s OperationStats) ThroughputMiBps() float64 {
	if s.Duration == 0 {
		return 0.0
	}

	return float64(s.InputSize) / (1 << 20) / s.Duration.Seconds()
}
