// Package compress provides the codecs used to measure how compactly an
// estimator's register array can be shipped or stored.
//
// Register arrays are dominated by small repeated values (mostly 1 to 10
// for realistic cardinalities), so general-purpose codecs shrink them
// considerably. Supported algorithms:
//   - None: returns data unchanged
//   - Zstd: best ratio (klauspost/compress, or valyala/gozstd with the
//     "gozstd" build tag and cgo enabled)
//   - S2: balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4)
//
// Usage:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stats, err := compress.Measure(codec, format.CompressionZstd, registers)
package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/cardinal/errs"
	"github.com/arloliu/cardinal/format"
)

// Compressor compresses a payload.
//
// The returned slice is owned by the caller and the input is not modified,
// except for the no-op codec, which returns its input as is.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// It returns an error if data is corrupted or was produced by a different
// algorithm. Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes a single compression of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty input.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with codec, decompresses the result and reports the
// resulting sizes.
//
// Returns errs.ErrSnapshotMismatch if the decompressed bytes differ from data.
func Measure(codec Codec, algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compression failed: %w", algorithm, err)
	}
	compressedSize := len(compressed)

	restored, err := codec.Decompress(compressed)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s decompression failed: %w", algorithm, err)
	}
	if !bytes.Equal(restored, data) {
		return CompressionStats{}, fmt.Errorf("%w: %s restored %d of %d bytes",
			errs.ErrSnapshotMismatch, algorithm, len(restored), len(data))
	}

	return CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(compressedSize),
	}, nil
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}
