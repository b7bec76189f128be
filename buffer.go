package blockpack

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Buffer owns the bytes of exactly one compressed block and carries the
// element type of the data inside it. The type association exists only at
// the type level; the runtime state is the byte sequence alone.
//
// A non-empty buffer always begins with the engine's self-describing
// block header, so its bytes can be inspected, persisted, or transmitted
// as an opaque blob.
type Buffer[T Element] struct {
	data []byte
}

// Len returns the compressed size in bytes, including the block header.
func (b Buffer[T]) Len() int {
	return len(b.data)
}

// Bytes returns a read-only view of the compressed block. The slice
// aliases the buffer's storage and must not be modified.
func (b Buffer[T]) Bytes() []byte {
	return b.data
}

// IntoBytes degrades the buffer into a plain byte sequence, discarding
// the element type binding. This is a one-way conversion: the returned
// bytes can only be decompressed through DecompressBytes, where the
// caller re-asserts the element type manually.
func (b Buffer[T]) IntoBytes() []byte {
	return b.data
}

// Hash64 returns the xxHash64 of the compressed bytes. The hash is
// defined over content only, so buffers with identical bytes hash equal
// regardless of their element types.
func (b Buffer[T]) Hash64() uint64 {
	return xxhash.Sum64(b.data)
}

// Equal reports whether two buffers hold identical compressed bytes.
// Equality is structural over content: the element types of the two
// buffers play no part in the comparison.
func Equal[T, U Element](a Buffer[T], b Buffer[U]) bool {
	return bytes.Equal(a.data, b.data)
}
