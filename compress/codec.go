// Package compress provides compression codecs for bigraph key-file
// payloads.
//
// A key file's JSON record carries the full symbol table plus one rendered
// SVG glyph per symbol, which compresses extremely well (repetitive SVG
// markup and meaning codes). The store picks one of four algorithms:
//
//   - None: no compression (debuggable plain JSON payload)
//   - Zstd: best ratio, the default for stored keys
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// The algorithm used is recorded in the key-file header so loading never
// needs out-of-band configuration.
package compress

import "fmt"

// Compressor compresses a payload.
//
// Returned slices are newly allocated and owned by the caller (except for
// the no-op codec, which passes the input through); input slices are never
// modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed with the matching algorithm.
// Corrupted or mismatched input surfaces as an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
