package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// Zstd trades some encode speed for the best compression ratio of the
// built-in codecs, which directly translates into shorter symbol sequences
// for redundant payloads.
//
// The implementation is selected at build time: with cgo enabled the
// valyala/gozstd bindings are used, otherwise the pure-Go
// klauspost/compress/zstd implementation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
