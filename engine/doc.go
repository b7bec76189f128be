// Package engine implements the block-oriented compression engine behind
// blockpack's typed layer.
//
// The engine is one-shot and whole-buffer: a single Compress call turns an
// input buffer into one self-describing block, and a single Decompress
// call reconstructs the original bytes from it. There is no streaming or
// incremental mode, no internal parallelism, and no state carried between
// calls.
//
// # Block layout
//
// Every block starts with a 16-byte header:
//
//	byte  0      format version
//	byte  1      codec id
//	byte  2      flags (0x1 byte shuffle, 0x2 verbatim, 0x4 bit shuffle)
//	byte  3      element size used by the shuffle filter
//	bytes 4-7    uncompressed size (uint32, little-endian)
//	bytes 8-11   block size (uint32, little-endian)
//	bytes 12-15  total compressed size including the header (uint32, little-endian)
//
// The header is followed by the codec payload, or by the original bytes
// when the verbatim flag is set. Compression falls back to verbatim
// storage whenever the codec output would not be smaller than the input,
// which bounds every block at len(input)+MaxOverhead bytes.
//
// # Shuffle pre-filter
//
// Before compression the input may be rearranged to expose cross-element
// redundancy: byte shuffle groups the n-th byte of every element together,
// bit shuffle does the same at bit granularity. Both filters are exact
// inverses of their unshuffle counterparts and are driven by the element
// size recorded in the header, so decompression needs no extra input.
//
// # Codecs
//
// Each algorithm lives in its own file and registers a name, a codec id,
// and the backing library in the capability table: blosclz (S2), lz4 and
// lz4hc (pierrec/lz4 block API), snappy, zlib, and zstd. The zstd codec
// uses klauspost/compress in pure-Go builds and valyala/gozstd when cgo
// is available. ComplibInfo answers capability probes against this table
// without touching any codec.
package engine
