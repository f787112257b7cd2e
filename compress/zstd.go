package compress

// ZstdCompressor provides Zstandard compression, the default for stored key
// files: the ratio matters more than speed for key material written once and
// read rarely.
//
// Two implementations exist behind build tags: a pure-Go implementation
// (klauspost/compress/zstd, the default) and a cgo implementation
// (valyala/gozstd) selected with the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
