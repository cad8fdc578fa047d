package backend

import (
	"github.com/klauspost/compress/zstd"
)

// Compression parameter ranges accepted by the zstd backend. Levels follow
// the Zstandard scale; the pure-Go encoder maps them onto its speed tiers.
// Window logs mirror the encoder's window size limits (zstd.MinWindowSize
// through zstd.MaxWindowSize), with 0 meaning automatic selection.
const (
	MinCompressionLevel = 1
	MaxCompressionLevel = 22

	minWindowLog = 10
	maxWindowLog = 29
	maxStrategy  = 9
)

// ZstdBackend compresses with Zstandard using single-shot frames that carry
// the declared content size. It owns one encoder and one decoder context,
// created on construction and released by Close.
//
// Configuration setters rebuild the contexts, so changed parameters take
// effect on the next operation, never retroactively. Compress and Decompress
// may run concurrently, but configuration mutation must be serialized
// against in-flight operations by the caller.
type ZstdBackend struct {
	enc  *zstd.Encoder
	dec  *zstd.Decoder
	opts Options
}

var _ Backend = (*ZstdBackend)(nil)

// NewZstdBackend creates a zstd backend with default options. It fails with
// a *CompressionError if either codec context cannot be created.
func NewZstdBackend() (*ZstdBackend, error) {
	b := &ZstdBackend{opts: DefaultOptions()}
	if err := b.rebuild(); err != nil {
		return nil, err
	}

	return b, nil
}

// Compress compresses data into a single zstd frame at the current level.
func (b *ZstdBackend) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if b.enc == nil {
		return nil, Errorf("zstd backend is closed")
	}

	// EncodeAll sizes the destination to the worst-case bound internally
	// and returns the slice trimmed to the actual compressed length.
	return b.enc.EncodeAll(data, nil), nil
}

// Decompress decodes a single zstd frame. The frame header must declare the
// content size: streaming frames without a known size are rejected, as is a
// frame whose actual decoded length disagrees with the declared one.
func (b *ZstdBackend) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if b.dec == nil {
		return nil, Errorf("zstd backend is closed")
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, zstdError("frame header decode", err)
	}
	if !header.HasFCS {
		return nil, Errorf("zstd frame does not declare its content size")
	}

	out, err := b.dec.DecodeAll(data, make([]byte, 0, header.FrameContentSize))
	if err != nil {
		return nil, zstdError("decompression", err)
	}
	if uint64(len(out)) != header.FrameContentSize {
		return nil, Errorf("zstd decompressed size mismatch: declared %d, got %d",
			header.FrameContentSize, len(out))
	}

	return out, nil
}

// Name returns "zstd".
func (b *ZstdBackend) Name() string { return "zstd" }

// Version returns the version of the underlying zstd implementation.
func (b *ZstdBackend) Version() string { return zstdLibraryVersion() }

// Available reports whether both codec contexts exist.
func (b *ZstdBackend) Available() bool { return b.enc != nil && b.dec != nil }

// Level returns the current compression level.
func (b *ZstdBackend) Level() int { return b.opts.Level }

// SetLevel validates the level against [MinCompressionLevel,
// MaxCompressionLevel] and rebuilds the compression context with it.
func (b *ZstdBackend) SetLevel(level int) error {
	if level < MinCompressionLevel || level > MaxCompressionLevel {
		return Errorf("invalid zstd compression level %d: must be in [%d, %d]",
			level, MinCompressionLevel, MaxCompressionLevel)
	}

	prev := b.opts.Level
	b.opts.Level = level
	if err := b.rebuild(); err != nil {
		b.opts.Level = prev
		return err
	}

	return nil
}

// Options returns a copy of the current options.
func (b *ZstdBackend) Options() Options { return b.opts.clone() }

// SetOptions validates and copies opts, then rebuilds both contexts.
func (b *ZstdBackend) SetOptions(opts Options) error {
	if opts.Level < MinCompressionLevel || opts.Level > MaxCompressionLevel {
		return Errorf("invalid zstd compression level %d: must be in [%d, %d]",
			opts.Level, MinCompressionLevel, MaxCompressionLevel)
	}
	if err := validateWindowLog(opts.WindowLog); err != nil {
		return err
	}
	if opts.Strategy < 0 || opts.Strategy > maxStrategy {
		return Errorf("invalid zstd strategy %d: must be in [0, %d]", opts.Strategy, maxStrategy)
	}

	prev := b.opts
	b.opts = opts.clone()
	if err := b.rebuild(); err != nil {
		b.opts = prev
		return err
	}

	return nil
}

// SetWindowLog sets the match window to 2^windowLog bytes, in
// [minWindowLog, maxWindowLog]; 0 restores automatic selection.
func (b *ZstdBackend) SetWindowLog(windowLog int) error {
	if err := validateWindowLog(windowLog); err != nil {
		return err
	}

	prev := b.opts.WindowLog
	b.opts.WindowLog = windowLog
	if err := b.rebuild(); err != nil {
		b.opts.WindowLog = prev
		return err
	}

	return nil
}

// SetStrategy records the search strategy (0 = automatic, 1-9). The pure-Go
// encoder derives its internal strategy from the level tier, so the value is
// advisory.
func (b *ZstdBackend) SetStrategy(strategy int) error {
	if strategy < 0 || strategy > maxStrategy {
		return Errorf("invalid zstd strategy %d: must be in [0, %d]", strategy, maxStrategy)
	}

	b.opts.Strategy = strategy

	return nil
}

// SetDictionary installs a preset dictionary (in the zstd dictionary
// format) on both contexts.
func (b *ZstdBackend) SetDictionary(dictionary []byte) error {
	prevDict, prevMode := b.opts.Dictionary, b.opts.DictionaryMode
	b.opts.Dictionary = append([]byte(nil), dictionary...)
	b.opts.DictionaryMode = len(dictionary) > 0
	if err := b.rebuild(); err != nil {
		b.opts.Dictionary, b.opts.DictionaryMode = prevDict, prevMode
		return err
	}

	return nil
}

// ClearDictionary removes any preset dictionary.
func (b *ZstdBackend) ClearDictionary() error {
	return b.SetDictionary(nil)
}

// Close releases both codec contexts. The backend is unusable afterwards.
func (b *ZstdBackend) Close() error {
	var err error
	if b.enc != nil {
		err = b.enc.Close()
		b.enc = nil
	}
	if b.dec != nil {
		b.dec.Close()
		b.dec = nil
	}
	if err != nil {
		return zstdError("close", err)
	}

	return nil
}

// validateWindowLog rejects window logs whose window size the encoder would
// refuse. 0 is always valid and selects the window automatically.
func validateWindowLog(windowLog int) error {
	if windowLog == 0 {
		return nil
	}
	if windowLog < minWindowLog || windowLog > maxWindowLog {
		return Errorf("invalid zstd window log %d: must be 0 or in [%d, %d]",
			windowLog, minWindowLog, maxWindowLog)
	}

	return nil
}

// rebuild creates fresh codec contexts from the current options, replacing
// the previous pair only when both succeed.
func (b *ZstdBackend) rebuild() error {
	eopts := []zstd.EOption{
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(b.opts.Level)),
	}
	if b.opts.WindowLog > 0 {
		eopts = append(eopts, zstd.WithWindowSize(1<<b.opts.WindowLog))
	}

	var dopts []zstd.DOption
	if b.opts.DictionaryMode && len(b.opts.Dictionary) > 0 {
		eopts = append(eopts, zstd.WithEncoderDict(b.opts.Dictionary))
		dopts = append(dopts, zstd.WithDecoderDicts(b.opts.Dictionary))
	}

	enc, err := zstd.NewWriter(nil, eopts...)
	if err != nil {
		return zstdError("compression context creation", err)
	}

	dec, err := zstd.NewReader(nil, dopts...)
	if err != nil {
		enc.Close()
		return zstdError("decompression context creation", err)
	}

	if b.enc != nil {
		b.enc.Close()
	}
	if b.dec != nil {
		b.dec.Close()
	}
	b.enc, b.dec = enc, dec

	return nil
}

// zstdError translates a codec library error into the module's uniform
// error kind.
func zstdError(operation string, err error) *CompressionError {
	return Errorf("zstd %s failed: %w", operation, err)
}
