package backend

import (
	"errors"
	"fmt"
)

// CompressionError is the single error kind reported by this module. It
// covers corrupt or unrecognized frames, declared/actual size mismatches,
// out-of-range levels and options, unknown or unavailable backend names, and
// use of an uninitialized manager.
type CompressionError struct {
	msg string
	err error
}

// Errorf creates a CompressionError with a formatted message. When one of
// the arguments is an error it is retained for unwrapping via %w.
func Errorf(format string, args ...any) *CompressionError {
	wrapped := fmt.Errorf(format, args...)

	return &CompressionError{
		msg: wrapped.Error(),
		err: errors.Unwrap(wrapped),
	}
}

func (e *CompressionError) Error() string {
	return e.msg
}

// Unwrap returns the underlying cause, if any.
func (e *CompressionError) Unwrap() error {
	return e.err
}

// IsCompressionError reports whether err is (or wraps) a CompressionError.
func IsCompressionError(err error) bool {
	var ce *CompressionError

	return errors.As(err, &ce)
}
