package stats

// Operation identifies which kind of codec call a Scope instruments.
type Operation uint8

const (
	// OpCompression marks a scope around a compress call.
	OpCompression Operation = iota
	// OpDecompression marks a scope around a decompress call.
	OpDecompression
)

// Scope is an instrumentation guard bound to a single compress or decompress
// call. It starts timing on construction and guarantees that exactly one
// record reaches the Collector per scope lifetime:
//
//	scope := stats.NewScope(collector, name, version, stats.OpCompression)
//	defer scope.Close()
//	...
//	scope.SetSizes(in, out)
//	scope.Complete(err)
//
// If the guarded operation returns early or panics before Complete runs,
// Close records a failure with the message "operation not completed". A
// Scope is not safe for concurrent use; it belongs to one operation.
type Scope struct {
	collector      *Collector
	backendName    string
	backendVersion string
	op             Operation
	timer          Timer

	inputSize  uint64
	outputSize uint64
	recorded   bool
}

// NewScope creates a Scope for one operation and starts its timer.
func NewScope(collector *Collector, backendName, backendVersion string, op Operation) *Scope {
	return &Scope{
		collector:      collector,
		backendName:    backendName,
		backendVersion: backendVersion,
		op:             op,
		timer:          StartTimer(),
	}
}

// SetSizes records the input and output byte counts for the operation.
func (s *Scope) SetSizes(inputSize, outputSize uint64) {
	s.inputSize = inputSize
	s.outputSize = outputSize
}

// Complete finishes the scope: a nil error records a success, a non-nil
// error records a failure carrying the error text. Calls after the first
// record are ignored.
func (s *Scope) Complete(err error) {
	if err != nil {
		s.record(false, err.Error())
		return
	}
	s.record(true, "")
}

// Close records a failure for a scope whose operation never completed. It is
// intended to run deferred; after a Complete call it does nothing.
func (s *Scope) Close() {
	s.record(false, "operation not completed")
}

func (s *Scope) record(success bool, errorMessage string) {
	if s.recorded {
		return
	}
	s.recorded = true

	op := OperationStats{
		InputSize:    s.inputSize,
		OutputSize:   s.outputSize,
		Duration:     s.timer.Elapsed(),
		Success:      success,
		ErrorMessage: errorMessage,
	}

	if s.op == OpCompression {
		s.collector.RecordCompression(s.backendName, s.backendVersion, op)
	} else {
		s.collector.RecordDecompression(s.backendName, s.backendVersion, op)
	}
}
