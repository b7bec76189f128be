package engine

import (
	"fmt"

	"github.com/arloliu/blockpack/errs"
	"github.com/arloliu/blockpack/format"
	"github.com/arloliu/blockpack/internal/pool"
)

// Params carries the per-call settings of a one-shot Compress.
type Params struct {
	// TypeSize is the element width in bytes used by the shuffle filter.
	// Values outside 1-255 are treated as 1, matching the header field width.
	TypeSize int

	// Level is the compression level, 0 (store verbatim) through 9.
	Level int

	// Shuffle selects the pre-filter applied before compression.
	Shuffle format.Shuffle

	// Algorithm is the canonical algorithm name, as listed in the
	// capability table.
	Algorithm string

	// BlockSize is a sizing hint; 0 lets the engine choose.
	BlockSize int

	// NumThreads is accepted for interface parity with multi-threaded
	// engines. This engine is single-threaded and ignores any value.
	NumThreads int
}

// Info is the block metadata readable without decompressing.
type Info struct {
	UncompressedSize int
	CompressedSize   int
	BlockSize        int
}

// Compress compresses src into dst as one self-describing block and
// returns the number of bytes written. src must not exceed MaxBufferSize
// bytes, since the header records sizes in 32-bit fields. dst must be at
// least len(src)+MaxOverhead bytes; with that much room the call cannot
// fail on any input within the size bound, because incompressible data is
// stored verbatim.
func Compress(dst, src []byte, p Params) (int, error) {
	lib, ok := lookupName(p.Algorithm)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCodec, p.Algorithm)
	}
	if p.Level < 0 || p.Level > 9 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, p.Level)
	}
	if err := checkSrcSize(len(src)); err != nil {
		return 0, err
	}
	if len(dst) < len(src)+MaxOverhead {
		return 0, fmt.Errorf("%w: %d bytes, need %d", errs.ErrDstTooSmall, len(dst), len(src)+MaxOverhead)
	}

	typeSize := p.TypeSize
	if typeSize <= 0 || typeSize > 255 {
		typeSize = 1
	}

	var (
		flags   byte
		payload []byte
	)

	if p.Level > 0 && len(src) > 0 {
		work := src

		shuffle := p.Shuffle
		if shuffle == format.ShuffleByte && typeSize == 1 {
			// Byte-shuffling single-byte elements is the identity.
			shuffle = format.ShuffleNone
		}
		if shuffle != format.ShuffleNone {
			scratch := pool.GetShuffleBuffer()
			defer pool.PutShuffleBuffer(scratch)
			scratch.Resize(len(src))

			switch shuffle {
			case format.ShuffleByte:
				shuffleBytes(scratch.B, src, typeSize)
				flags |= flagByteShuffle
			case format.ShuffleBit:
				bitShuffle(scratch.B, src, typeSize)
				flags |= flagBitShuffle
			}
			work = scratch.B
		}

		compressed, err := lib.codec.Compress(work, p.Level)
		if err != nil {
			return 0, fmt.Errorf("%s compression failed: %w", lib.name, err)
		}
		payload = compressed
	}

	// Fall back to verbatim storage when compression is disabled or does
	// not shrink the input. The stored bytes are the original, unshuffled
	// input.
	if len(payload) == 0 || len(payload) >= len(src) {
		payload = src
		flags = flagVerbatim
	}

	h := header{
		version:   formatVersion,
		codec:     lib.id,
		flags:     flags,
		typeSize:  byte(typeSize),
		nbytes:    uint32(len(src)),
		blockSize: uint32(chooseBlockSize(len(src), p.Level, p.BlockSize)),
		cbytes:    uint32(headerSize + len(payload)),
	}
	h.encode(dst)
	copy(dst[headerSize:], payload)

	return headerSize + len(payload), nil
}

// checkSrcSize rejects inputs whose compressed size could not be recorded
// in the header's 32-bit fields.
func checkSrcSize(n int) error {
	if n > MaxBufferSize {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", errs.ErrDataTooLarge, n, MaxBufferSize)
	}

	return nil
}

// Decompress reconstructs the original bytes of one block into dst and
// returns the byte count written. dst must be at least as large as the
// block's declared uncompressed size. numThreads is accepted for interface
// parity and ignored.
func Decompress(dst, src []byte, numThreads int) (int, error) {
	_ = numThreads

	h, err := parseHeader(src)
	if err != nil {
		return 0, err
	}

	nbytes := int(h.nbytes)
	cbytes := int(h.cbytes)
	if cbytes < headerSize || cbytes > len(src) {
		return 0, fmt.Errorf("%w: compressed size %d out of range", errs.ErrInvalidData, cbytes)
	}
	if len(dst) < nbytes {
		return 0, fmt.Errorf("%w: %d bytes, need %d", errs.ErrDstTooSmall, len(dst), nbytes)
	}

	payload := src[headerSize:cbytes]

	var out []byte
	if h.flags&flagVerbatim != 0 {
		if len(payload) != nbytes {
			return 0, fmt.Errorf("%w: verbatim payload is %d bytes, header declares %d",
				errs.ErrInvalidData, len(payload), nbytes)
		}
		out = payload
	} else {
		lib, ok := lookupID(h.codec)
		if !ok {
			return 0, fmt.Errorf("%w: codec id %d", errs.ErrUnknownCodec, h.codec)
		}

		out, err = lib.codec.Decompress(payload, nbytes)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", errs.ErrInvalidData, lib.name, err)
		}
		if len(out) != nbytes {
			return 0, fmt.Errorf("%w: decompressed %d bytes, header declares %d",
				errs.ErrInvalidData, len(out), nbytes)
		}
	}

	typeSize := int(h.typeSize)
	if typeSize == 0 {
		typeSize = 1
	}

	switch {
	case h.flags&flagBitShuffle != 0:
		bitUnshuffle(dst[:nbytes], out, typeSize)
	case h.flags&flagByteShuffle != 0:
		unshuffleBytes(dst[:nbytes], out, typeSize)
	default:
		copy(dst, out)
	}

	return nbytes, nil
}

// BlockInfo reads the block metadata from a compressed block without
// decompressing it.
func BlockInfo(src []byte) (Info, error) {
	h, err := parseHeader(src)
	if err != nil {
		return Info{}, err
	}

	return Info{
		UncompressedSize: int(h.nbytes),
		CompressedSize:   int(h.cbytes),
		BlockSize:        int(h.blockSize),
	}, nil
}

// chooseBlockSize resolves the recorded block size: a positive hint is
// honored up to the input size, otherwise the size scales with the level
// the way higher levels favor larger working sets.
func chooseBlockSize(nbytes, level, hint int) int {
	if hint > 0 {
		if hint > nbytes {
			hint = nbytes
		}

		return hint
	}

	bs := 64 * 1024
	switch {
	case level >= 8:
		bs = 256 * 1024
	case level >= 5:
		bs = 128 * 1024
	}
	if bs > nbytes {
		bs = nbytes
	}

	return bs
}
