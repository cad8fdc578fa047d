package compress

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goethe-engine/compress/backend"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m := NewManager()
	require.NoError(t, m.Initialize(""))
	t.Cleanup(func() { m.Close() })

	return m
}

func TestManager_Uninitialized(t *testing.T) {
	m := NewManager()

	assert.False(t, m.Initialized())
	assert.Equal(t, "uninitialized", m.BackendName())
	assert.Equal(t, "unknown", m.BackendVersion())

	_, err := m.Compress([]byte("data"))
	require.Error(t, err)
	assert.True(t, backend.IsCompressionError(err))
	assert.Contains(t, err.Error(), "not initialized")

	_, err = m.Decompress([]byte{0x01})
	assert.Error(t, err)

	assert.Error(t, m.SetLevel(5))
	_, err = m.Level()
	assert.Error(t, err)
	assert.Error(t, m.SetOptions(backend.DefaultOptions()))
	_, err = m.Options()
	assert.Error(t, err)

	// Statistics surfaces stay usable before initialization.
	assert.Equal(t, uint64(0), m.Stats().TotalCompressions)
	assert.NoError(t, m.Close())
}

func TestManager_AutoSelect(t *testing.T) {
	m := newTestManager(t)

	assert.True(t, m.Initialized())
	assert.Equal(t, "zstd", m.BackendName())
	assert.NotEmpty(t, m.BackendVersion())
}

func TestManager_Initialize_Named(t *testing.T) {
	m := NewManager()
	defer m.Close()

	require.NoError(t, m.Initialize("null"))
	assert.Equal(t, "null", m.BackendName())

	// Re-initializing replaces the backend.
	require.NoError(t, m.Initialize("zstd"))
	assert.Equal(t, "zstd", m.BackendName())
}

func TestManager_Initialize_Unknown(t *testing.T) {
	m := NewManager()

	err := m.Initialize("snappy")
	require.Error(t, err)
	assert.False(t, m.Initialized())
}

func TestManager_Roundtrip(t *testing.T) {
	m := newTestManager(t)

	payload := bytes.Repeat([]byte("The innkeeper greets you warmly. "), 64)

	compressed, err := m.Compress(payload)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(payload))

	restored, err := m.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestManager_StringHelpers(t *testing.T) {
	m := newTestManager(t)

	const text = "She opened the letter with trembling hands."

	compressed, err := m.CompressString(text)
	require.NoError(t, err)

	restored, err := m.DecompressToString(compressed)
	require.NoError(t, err)
	assert.Equal(t, text, restored)
}

func TestManager_SwitchBackend(t *testing.T) {
	m := newTestManager(t)
	require.Equal(t, "zstd", m.BackendName())

	assert.True(t, m.SwitchBackend("null"))
	assert.Equal(t, "null", m.BackendName())

	// A failed switch keeps the current backend.
	assert.False(t, m.SwitchBackend("nonexistent"))
	assert.Equal(t, "null", m.BackendName())

	assert.True(t, m.SwitchBackend("zstd"))
	assert.Equal(t, "zstd", m.BackendName())
}

func TestManager_SwitchBackend_Uninitialized(t *testing.T) {
	m := NewManager()
	defer m.Close()

	// A successful switch also initializes the manager.
	assert.True(t, m.SwitchBackend("null"))
	assert.True(t, m.Initialized())
	assert.Equal(t, "null", m.BackendName())
}

func TestManager_LevelAndOptions(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.SetLevel(9))
	level, err := m.Level()
	require.NoError(t, err)
	assert.Equal(t, 9, level)

	assert.Error(t, m.SetLevel(0))
	assert.Error(t, m.SetLevel(23))

	opts, err := m.Options()
	require.NoError(t, err)
	assert.Equal(t, 9, opts.Level)

	opts.Level = 3
	require.NoError(t, m.SetOptions(opts))
	level, err = m.Level()
	require.NoError(t, err)
	assert.Equal(t, 3, level)
}

func TestManager_Statistics(t *testing.T) {
	m := newTestManager(t)
	assert.True(t, m.StatisticsEnabled())

	payload := bytes.Repeat([]byte("stat line "), 100)

	compressed, err := m.Compress(payload)
	require.NoError(t, err)
	_, err = m.Decompress(compressed)
	require.NoError(t, err)

	snap := m.Stats()
	assert.Equal(t, "zstd", snap.BackendName)
	assert.Equal(t, uint64(1), snap.TotalCompressions)
	assert.Equal(t, uint64(1), snap.TotalDecompressions)
	// Input accumulates across both directions.
	assert.Equal(t, uint64(len(payload)+len(compressed)), snap.TotalInputSize)
	assert.Equal(t, uint64(len(payload)), snap.TotalDecompressedSize)

	global := m.GlobalStats()
	assert.Equal(t, uint64(1), global.TotalCompressions)

	m.ResetStats()
	assert.Equal(t, uint64(0), m.Stats().TotalCompressions)
	// Per-backend reset leaves the global aggregate intact.
	assert.Equal(t, uint64(1), m.GlobalStats().TotalCompressions)

	m.ResetAllStats()
	assert.Equal(t, uint64(0), m.GlobalStats().TotalCompressions)
}

func TestManager_StatisticsDisabled(t *testing.T) {
	m := newTestManager(t)

	m.SetStatisticsEnabled(false)
	assert.False(t, m.StatisticsEnabled())

	_, err := m.Compress([]byte("quiet"))
	require.NoError(t, err)

	assert.Equal(t, uint64(0), m.Stats().TotalCompressions)
	assert.Equal(t, uint64(0), m.GlobalStats().TotalCompressions)
}

func TestManager_ExportJSON(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Compress([]byte("export me"))
	require.NoError(t, err)

	data, err := m.ExportJSON()
	require.NoError(t, err)

	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Contains(t, report, "statistics_enabled")
	assert.Contains(t, report, "global_stats")
	assert.Contains(t, report, "backend_stats")
}

func TestManager_ExportCSV(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Compress([]byte("csv row"))
	require.NoError(t, err)

	data, err := m.ExportCSV()
	require.NoError(t, err)
	assert.Contains(t, string(data), "GLOBAL")
	assert.Contains(t, string(data), "zstd")
}

func TestManager_AvailableBackends(t *testing.T) {
	m := NewManager()

	names := m.AvailableBackends()
	assert.Contains(t, names, "null")
	assert.Contains(t, names, "zstd")
}

func TestManager_Close(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Initialize("zstd"))

	require.NoError(t, m.Close())
	assert.False(t, m.Initialized())
	assert.Equal(t, "uninitialized", m.BackendName())

	_, err := m.Compress([]byte("after close"))
	assert.Error(t, err)

	// Close is idempotent and the manager may be re-initialized.
	assert.NoError(t, m.Close())
	require.NoError(t, m.Initialize("null"))
	assert.Equal(t, "null", m.BackendName())
	assert.NoError(t, m.Close())
}

func TestManager_WithCollector(t *testing.T) {
	shared := NewManager().Collector()
	m := NewManager(WithCollector(shared))
	require.NoError(t, m.Initialize("null"))
	defer m.Close()

	_, err := m.Compress([]byte("shared"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), shared.GlobalStats().TotalCompressions)
}
