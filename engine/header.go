package engine

import (
	"fmt"
	"math"

	"github.com/arloliu/blockpack/endian"
	"github.com/arloliu/blockpack/errs"
)

const (
	// MaxOverhead is the worst-case number of bytes a block adds on top of
	// its uncompressed payload. A destination of len(src)+MaxOverhead bytes
	// is always large enough for Compress.
	MaxOverhead = headerSize

	// MaxBufferSize is the largest input Compress accepts. The header
	// records sizes in 32-bit fields and the total compressed size must
	// stay representable after adding MaxOverhead, so larger inputs are
	// rejected rather than silently truncated.
	MaxBufferSize = math.MaxInt32 - MaxOverhead

	headerSize    = 16
	formatVersion = 2
)

// Header flag bits.
const (
	flagByteShuffle = 0x1 // payload was byte-shuffled before compression
	flagVerbatim    = 0x2 // payload is stored uncompressed
	flagBitShuffle  = 0x4 // payload was bit-shuffled before compression
)

var hdrEndian = endian.GetLittleEndianEngine()

// header is the decoded form of the 16-byte block header.
type header struct {
	version   byte
	codec     byte
	flags     byte
	typeSize  byte
	nbytes    uint32
	blockSize uint32
	cbytes    uint32
}

func (h header) encode(dst []byte) {
	dst[0] = h.version
	dst[1] = h.codec
	dst[2] = h.flags
	dst[3] = h.typeSize
	hdrEndian.PutUint32(dst[4:8], h.nbytes)
	hdrEndian.PutUint32(dst[8:12], h.blockSize)
	hdrEndian.PutUint32(dst[12:16], h.cbytes)
}

func parseHeader(src []byte) (header, error) {
	if len(src) < headerSize {
		return header{}, fmt.Errorf("%w: %d bytes, need %d", errs.ErrInvalidHeader, len(src), headerSize)
	}

	h := header{
		version:   src[0],
		codec:     src[1],
		flags:     src[2],
		typeSize:  src[3],
		nbytes:    hdrEndian.Uint32(src[4:8]),
		blockSize: hdrEndian.Uint32(src[8:12]),
		cbytes:    hdrEndian.Uint32(src[12:16]),
	}
	if h.version != formatVersion {
		return header{}, fmt.Errorf("%w: version %d, want %d", errs.ErrInvalidHeader, h.version, formatVersion)
	}

	return h, nil
}
