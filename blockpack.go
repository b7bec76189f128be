// Package blockpack provides a safe, typed access layer over a
// block-oriented binary compression engine.
//
// The engine is a high-performance compressor optimized for binary data,
// and especially for arrays of similar fixed-width values: floats that fit
// a statistical distribution, integers from a restricted range, timestamps
// with a shared alignment. Unlike stream compressors it is block-oriented:
// the entire dataset is compressed or decompressed in one call, producing
// a single self-describing block.
//
// # Basic Usage
//
//	data := []uint32{1, 1, 2, 5, 8, 13, 21, 34, 55, 89, 144}
//
//	ctx, err := blockpack.NewContext().
//		WithLevel(format.Level2).
//		WithShuffle(format.ShuffleByte).
//		WithAlgorithm(format.AlgoBloscLZ)
//	if err != nil {
//		// the algorithm is not available in this engine build
//	}
//
//	buf := blockpack.Compress(ctx, data)
//	decoded, err := blockpack.Decompress(buf)
//	// decoded == data
//
// # Contexts
//
// A Context is an immutable configuration value built once through a
// chain of With* steps and reused across any number of Compress calls.
// Every step is a pure value transformation except WithAlgorithm, which
// probes the engine capability table and fails with
// errs.ErrUnsupportedAlgorithm when the algorithm is not compiled into
// the linked engine. Contexts are cheap to copy and safe to share across
// goroutines.
//
// # Typed buffers and the trust boundary
//
// Compress returns a Buffer[T] whose only state beyond the compressed
// bytes is the element type, bound at the type level. Decompress accepts
// that buffer and is therefore always safe: the type assertion was made
// by the compress call that produced it.
//
// IntoBytes deliberately discards the type binding, e.g. to persist or
// transmit the block. Re-associating bytes with an element type goes
// through DecompressBytes, where the caller asserts the type manually.
// That entry point sits on a trust boundary: the block header's declared
// uncompressed size steers the output allocation, so decompressing bytes
// from an untrusted source relies entirely on the engine's own
// validation.
//
// # Shuffle and element size
//
// The shuffle pre-filter interprets the input as fixed-width elements, so
// its element size normally comes from the compile-time size of T. When
// compressing pre-serialized byte buffers whose logical element width is
// not one byte, set the width explicitly with Context.WithTypeSize.
package blockpack

import "unsafe"

// Element constrains the types blockpack can compress and decompress to
// fixed-width numerics. The constraint is what makes Decompress safe:
// reinterpreting decompressed bytes can never manufacture invalid values
// for these types.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// elemSize returns the in-memory byte width of T.
func elemSize[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// sliceBytes views a typed slice as raw bytes without copying. The view
// aliases s and follows the host byte order.
func sliceBytes[T Element](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*elemSize[T]())
}
