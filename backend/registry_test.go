package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UnknownBackend(t *testing.T) {
	r := NewDefaultRegistry()

	_, err := r.New("nonexistent")
	require.Error(t, err)
	assert.True(t, IsCompressionError(err))
	assert.Contains(t, err.Error(), "unknown compression backend")
}

func TestRegistry_CaseSensitive(t *testing.T) {
	r := NewDefaultRegistry()

	_, err := r.New("ZSTD")
	require.Error(t, err)
	assert.False(t, r.Available("Null"))
	assert.True(t, r.Available("null"))
}

func TestRegistry_NewBuiltins(t *testing.T) {
	r := NewDefaultRegistry()

	for _, name := range []string{"null", "zstd"} {
		t.Run(name, func(t *testing.T) {
			b, err := r.New(name)
			require.NoError(t, err)
			defer b.Close()

			assert.Equal(t, name, b.Name())
			assert.True(t, b.Available())
		})
	}
}

func TestRegistry_NewBestPrefersZstd(t *testing.T) {
	r := NewDefaultRegistry()

	b, err := r.NewBest()
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "zstd", b.Name())
}

func TestRegistry_NewBestFallsBack(t *testing.T) {
	r := NewRegistry()
	r.Register("null", Driver{
		New:   func() (Backend, error) { return NewNullBackend(), nil },
		Probe: func() bool { return true },
	})

	b, err := r.NewBest()
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "null", b.Name(), "null is the priority-list fallback")
}

func TestRegistry_NewBestEmpty(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewBest()
	require.Error(t, err)
	assert.True(t, IsCompressionError(err))
}

func TestRegistry_UnavailableBackend(t *testing.T) {
	r := NewRegistry()
	r.Register("flaky", Driver{
		New:   func() (Backend, error) { return &unavailableBackend{}, nil },
		Probe: func() bool { return true },
	})

	_, err := r.New("flaky")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register("null", Driver{
		New:   func() (Backend, error) { return &unavailableBackend{}, nil },
		Probe: func() bool { return false },
	})

	assert.False(t, r.Available("null"))
}

func TestRegistry_AvailableNames(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register("flaky", Driver{
		New:   func() (Backend, error) { return &unavailableBackend{}, nil },
		Probe: func() bool { return false },
	})

	assert.Equal(t, []string{"flaky", "null", "zstd"}, r.Names())
	assert.Equal(t, []string{"null", "zstd"}, r.AvailableNames())
}

// unavailableBackend reports itself unavailable for registry tests.
type unavailableBackend struct {
	NullBackend
}

func (b *unavailableBackend) Available() bool { return false }
