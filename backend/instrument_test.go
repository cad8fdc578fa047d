package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goethe-engine/compress/stats"
)

// faultyBackend fails every operation, for exercising the failure path of
// the instrumentation wrapper.
type faultyBackend struct {
	NullBackend
}

func (b *faultyBackend) Compress(data []byte) ([]byte, error) {
	return nil, Errorf("compress always fails")
}

func (b *faultyBackend) Decompress(data []byte) ([]byte, error) {
	return nil, Errorf("decompress always fails")
}

func (b *faultyBackend) Name() string { return "faulty" }

func TestInstrumented_RecordsSuccess(t *testing.T) {
	collector := stats.NewCollector()
	b := WithStats(NewNullBackend(), collector)

	data := []byte{1, 2, 3, 4, 5}
	out, err := b.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = b.Decompress(out)
	require.NoError(t, err)

	snap := collector.BackendStats("null")
	assert.Equal(t, uint64(1), snap.TotalCompressions)
	assert.Equal(t, uint64(1), snap.SuccessfulCompressions)
	assert.Equal(t, uint64(1), snap.SuccessfulDecompressions)
	assert.Equal(t, uint64(5), snap.TotalCompressedSize)
	assert.Equal(t, uint64(5), snap.TotalDecompressedSize)
}

func TestInstrumented_RecordsFailureAndPropagates(t *testing.T) {
	collector := stats.NewCollector()
	b := WithStats(&faultyBackend{}, collector)

	_, err := b.Compress([]byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, IsCompressionError(err), "instrumentation must not alter the error")

	_, err = b.Decompress([]byte{1, 2, 3})
	require.Error(t, err)

	snap := collector.BackendStats("faulty")
	assert.Equal(t, uint64(1), snap.FailedCompressions)
	assert.Equal(t, uint64(1), snap.FailedDecompressions)
	assert.Zero(t, snap.SuccessfulCompressions)
	assert.Equal(t, uint64(6), snap.TotalInputSize, "input size recorded for failures too")
	assert.Zero(t, snap.TotalCompressedSize)
}

func TestInstrumented_DisabledBypassesRecording(t *testing.T) {
	collector := stats.NewCollector()
	collector.SetEnabled(false)

	b := WithStats(NewNullBackend(), collector)
	_, err := b.Compress([]byte{1, 2, 3})
	require.NoError(t, err)

	assert.Zero(t, collector.GlobalStats().TotalCompressions)
}

func TestInstrumented_Unwrap(t *testing.T) {
	inner := NewNullBackend()
	b := WithStats(inner, stats.NewCollector())

	assert.Same(t, inner, b.Unwrap())
}
