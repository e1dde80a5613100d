package compress

// ZstdCompressor compresses with Zstandard. It gives the best ratio of the
// built-in codecs on register snapshots.
//
// The pure Go implementation from klauspost/compress is used by default.
// Building with cgo and the "gozstd" tag switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
