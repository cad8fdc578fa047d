package backend

// Backend is the contract every compression algorithm implementation
// satisfies.
//
// Compress and Decompress operate on whole byte buffers: the returned slice
// is newly allocated and owned by the caller, and the input slice is never
// modified. Empty input yields empty output without error. All failures are
// reported as *CompressionError.
//
// Implementations are not required to synchronize configuration mutation
// (SetLevel, SetOptions) against in-flight operations; callers that share a
// backend across goroutines must serialize configuration changes. The
// Manager in the root package does this with a read-write lock.
type Backend interface {
	// Compress compresses data and returns the compressed result.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress. It validates the input format and
	// returns an error for corrupt or incompatible data.
	Decompress(data []byte) ([]byte, error)

	// Name returns the backend's registry name, e.g. "zstd".
	Name() string

	// Version returns the underlying codec implementation version.
	Version() string

	// Available reports whether the backend can perform operations.
	// Registries check this before handing a backend to callers.
	Available() bool

	// Level returns the current compression level.
	Level() int

	// SetLevel sets the compression level. The accepted range is
	// backend-defined; out-of-range values yield a *CompressionError.
	SetLevel(level int) error

	// Options returns a copy of the backend's current options.
	Options() Options

	// SetOptions replaces the backend's options. The options are copied in;
	// they take effect on the next operation.
	SetOptions(opts Options) error

	// Close releases any native or pooled resources the backend owns.
	// A closed backend must not be used again.
	Close() error
}

// Options configures a backend. The zero value selects backend defaults
// except for Level, which callers usually set explicitly; DefaultOptions
// returns the canonical starting point.
type Options struct {
	// Level is the compression level; the valid range is backend-defined.
	Level int

	// DictionaryMode indicates a preset dictionary is in use. It is kept in
	// sync with Dictionary by SetDictionary/ClearDictionary.
	DictionaryMode bool

	// Dictionary is the raw preset dictionary content, nil when unused.
	Dictionary []byte

	// WindowLog selects the match window as a power of two; 0 means the
	// codec chooses automatically.
	WindowLog int

	// Strategy selects the codec's internal search strategy: 0 means
	// automatic, 1-9 map onto increasingly thorough strategies.
	Strategy int
}

// DefaultOptions returns the options backends start with.
func DefaultOptions() Options {
	return Options{Level: defaultCompressionLevel}
}

// clone deep-copies the options so the backend never aliases caller memory.
func (o Options) clone() Options {
	cp := o
	if o.Dictionary != nil {
		cp.Dictionary = make([]byte, len(o.Dictionary))
		copy(cp.Dictionary, o.Dictionary)
	}

	return cp
}

const defaultCompressionLevel = 6
