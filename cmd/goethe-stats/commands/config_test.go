package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Backend)
	assert.Zero(t, cfg.Level)
	assert.True(t, cfg.Statistics)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goethe.yaml")
	content := "backend: zstd\nlevel: 9\nstatistics: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "zstd", cfg.Backend)
	assert.Equal(t, 9, cfg.Level)
	assert.False(t, cfg.Statistics)
}

func TestLoadConfig_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goethe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: \"null\"\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "null", cfg.Backend)
	// Unset keys keep their defaults.
	assert.True(t, cfg.Statistics)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unclosed"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
