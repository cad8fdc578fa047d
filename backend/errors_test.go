package backend

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	err := Errorf("invalid compression level %d", 42)

	assert.Equal(t, "invalid compression level 42", err.Error())
	assert.True(t, IsCompressionError(err))
	assert.Nil(t, err.Unwrap())
}

func TestErrorf_Wrapping(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := Errorf("zstd decompression failed: %w", cause)

	require.True(t, errors.Is(err, cause))
	assert.Same(t, cause, err.Unwrap())
}

func TestIsCompressionError(t *testing.T) {
	assert.False(t, IsCompressionError(nil))
	assert.False(t, IsCompressionError(io.EOF))
	assert.True(t, IsCompressionError(Errorf("x")))

	wrapped := fmt.Errorf("outer: %w", Errorf("inner"))
	assert.True(t, IsCompressionError(wrapped))
}
