package backend

// NullBackend passes data through unchanged. It is always available and is
// the last entry in the auto-selection priority order, serving as the
// fallback when no real codec can be used. It is also useful for measuring
// instrumentation overhead without compression work.
type NullBackend struct {
	level int
	opts  Options
}

var _ Backend = (*NullBackend)(nil)

// NewNullBackend creates a passthrough backend.
func NewNullBackend() *NullBackend {
	return &NullBackend{opts: DefaultOptions()}
}

// Compress copies the input unchanged.
func (b *NullBackend) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// Decompress copies the input unchanged after a best-effort sanity check:
// an input longer than one byte whose bytes are all identical and all 0x00
// or all 0xFF is rejected as potentially invalid. The check intentionally
// rejects some legitimate uniform payloads; it is a heuristic, not a
// content-integrity guarantee.
func (b *NullBackend) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	if len(data) > 1 && (data[0] == 0x00 || data[0] == 0xFF) {
		uniform := true
		for _, v := range data[1:] {
			if v != data[0] {
				uniform = false
				break
			}
		}
		if uniform {
			return nil, Errorf("null backend detected potentially invalid data")
		}
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// Name returns "null".
func (b *NullBackend) Name() string { return "null" }

// Version returns the passthrough implementation version.
func (b *NullBackend) Version() string { return "1.0.0" }

// Available always reports true.
func (b *NullBackend) Available() bool { return true }

// Level returns the stored level. The null backend ignores it.
func (b *NullBackend) Level() int { return b.level }

// SetLevel stores the level. Any value is accepted and ignored.
func (b *NullBackend) SetLevel(level int) error {
	b.level = level

	return nil
}

// Options returns a copy of the stored options.
func (b *NullBackend) Options() Options { return b.opts.clone() }

// SetOptions stores the options. They have no effect on passthrough.
func (b *NullBackend) SetOptions(opts Options) error {
	b.opts = opts.clone()

	return nil
}

// Close is a no-op; the null backend holds no resources.
func (b *NullBackend) Close() error { return nil }
