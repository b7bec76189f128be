package blockpack

import (
	"fmt"

	"github.com/arloliu/blockpack/engine"
	"github.com/arloliu/blockpack/errs"
)

// Decompress reconstructs the typed slice a Buffer was compressed from.
//
// This entry point is safe by construction: the buffer's element type was
// bound by the Compress call that produced it, so the reinterpretation of
// the decompressed bytes as T cannot be wrong. Failures wrap
// errs.ErrDecompressFailed and are not differentiated further; an
// undersized block, corrupted data, and an unavailable codec all look the
// same at this boundary.
func Decompress[T Element](buf Buffer[T]) ([]T, error) {
	return decompressAs[T](buf.data)
}

// DecompressBytes reconstructs a typed slice from a raw byte sequence
// that the caller asserts was produced by a Compress call with element
// type T.
//
// The assertion lives outside the type system, which makes this entry
// point trust-sensitive in two independent ways. If T differs in width
// from the original element type, the block's declared uncompressed size
// is no longer a whole number of elements and the call fails with
// errs.ErrElementSizeMismatch; a same-width wrong T cannot be detected
// and yields reinterpreted values. And if the bytes did not genuinely
// come from a Compress call, the embedded header is attacker-controlled:
// the engine's own validation is the only defense, so decompressing
// untrusted input is a deliberate trust boundary of this API.
func DecompressBytes[T Element](src []byte) ([]T, error) {
	return decompressAs[T](src)
}

func decompressAs[T Element](src []byte) ([]T, error) {
	info, err := engine.BlockInfo(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompressFailed, err)
	}

	typeSize := elemSize[T]()
	if info.UncompressedSize%typeSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes cannot hold %d-byte elements",
			errs.ErrElementSizeMismatch, info.UncompressedSize, typeSize)
	}

	dst := make([]T, info.UncompressedSize/typeSize)
	n, err := engine.Decompress(sliceBytes(dst), src, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompressFailed, err)
	}

	return dst[:n/typeSize], nil
}
