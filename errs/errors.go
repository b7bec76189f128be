// Package errs defines the sentinel errors returned by blockpack.
//
// All errors are plain sentinels intended for errors.Is checks; call sites
// wrap them with fmt.Errorf("%w: ...") to add context.
package errs

import "errors"

// Typed-layer errors.
var (
	// ErrUnsupportedAlgorithm is returned by Context.WithAlgorithm when the
	// capability probe reports the algorithm is not available in the linked
	// engine. The context is left unchanged.
	ErrUnsupportedAlgorithm = errors.New("unsupported compression algorithm")

	// ErrDecompressFailed covers every recoverable decompression failure:
	// undersized destination, corrupted or truncated block data, and blocks
	// compressed with a codec the engine does not know. The engine does not
	// discriminate between these at the API boundary.
	ErrDecompressFailed = errors.New("decompress failed")

	// ErrElementSizeMismatch is returned when a block's declared
	// uncompressed size is not a whole number of elements of the requested
	// type, which indicates the block was compressed with a different
	// element type or width.
	ErrElementSizeMismatch = errors.New("decompressed size is not a multiple of the element size")
)

// Engine-level errors.
var (
	// ErrInvalidHeader indicates the block header is missing, truncated, or
	// carries an unsupported format version.
	ErrInvalidHeader = errors.New("invalid block header")

	// ErrInvalidData indicates the block payload is inconsistent with its
	// header or fails codec validation.
	ErrInvalidData = errors.New("invalid compressed data")

	// ErrUnknownCodec indicates an algorithm name or codec id that is not
	// present in the engine capability table.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrDataTooLarge indicates an input larger than the engine's maximum
	// buffer size. Sizes are recorded in 32-bit header fields, so bigger
	// inputs cannot be represented in a block.
	ErrDataTooLarge = errors.New("input data too large")

	// ErrDstTooSmall indicates a destination buffer smaller than the
	// operation's documented minimum.
	ErrDstTooSmall = errors.New("destination buffer too small")

	// ErrInvalidLevel indicates a compression level outside the 0-9 range.
	ErrInvalidLevel = errors.New("invalid compression level")
)
