package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goethe-engine/compress"
)

func TestGenerateTestData(t *testing.T) {
	data := generateTestData(4096, 1)
	require.Len(t, data, 4096)

	for _, b := range data {
		assert.Less(t, int(b), 20)
	}

	// Same seed reproduces the payload; a different seed does not.
	assert.Equal(t, data, generateTestData(4096, 1))
	assert.NotEqual(t, data, generateTestData(4096, 2))
}

func TestThroughputMBps(t *testing.T) {
	assert.InDelta(t, 1.0, throughputMBps(1_000_000, time.Second), 1e-9)
	assert.InDelta(t, 20.0, throughputMBps(10_000_000, 500*time.Millisecond), 1e-9)
	assert.Zero(t, throughputMBps(1_000_000, 0))
}

func TestIntegrityLabel(t *testing.T) {
	assert.Equal(t, "OK", integrityLabel([]byte("abc"), []byte("abc")))
	assert.Equal(t, "FAILED", integrityLabel([]byte("abc"), []byte("abd")))
}

func TestRunBenchmark(t *testing.T) {
	mgr := compress.NewManager()
	require.NoError(t, mgr.Initialize(""))
	defer mgr.Close()

	require.NoError(t, runBenchmark(mgr, 64<<10))

	snap := mgr.Stats()
	assert.Equal(t, uint64(1), snap.TotalCompressions)
	assert.Equal(t, uint64(1), snap.TotalDecompressions)
}

func TestRunStressTest(t *testing.T) {
	mgr := compress.NewManager()
	require.NoError(t, mgr.Initialize(""))
	defer mgr.Close()

	require.NoError(t, runStressTest(mgr, 5))

	snap := mgr.Stats()
	assert.Equal(t, uint64(5), snap.TotalCompressions)
	assert.Equal(t, uint64(5), snap.TotalDecompressions)
	assert.Zero(t, snap.FailedCompressions)
}
