//go:build !cgo

package engine

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

const zstdLibrary = "klauspost/compress/zstd"

var zstdVersion = moduleVersion("github.com/klauspost/compress", "1.18.0")

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation
// overhead. The klauspost/compress/zstd library is explicitly designed for
// decoder reuse and operates without allocations after a warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // single-threaded engine contract
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPools holds one encoder pool per klauspost speed level, since
// an encoder's level is fixed at construction. Index by zstd.EncoderLevel.
var zstdEncoderPools [zstd.SpeedBestCompression + 1]*sync.Pool

func init() {
	for lvl := zstd.SpeedFastest; lvl <= zstd.SpeedBestCompression; lvl++ {
		lvl := lvl // capture per-iteration value under pre-1.22 loop semantics
		zstdEncoderPools[lvl] = &sync.Pool{
			New: func() any {
				encoder, err := zstd.NewWriter(nil,
					zstd.WithEncoderLevel(lvl),
					zstd.WithEncoderConcurrency(1),
					zstd.WithEncoderCRC(false),
				)
				if err != nil {
					// This should never happen with valid options
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}
				return encoder
			},
		}
	}
}

// zstdEncoderLevel buckets the engine's 1-9 range into klauspost's four
// speed levels.
func zstdEncoderLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 2:
		return zstd.SpeedFastest
	case level <= 5:
		return zstd.SpeedDefault
	case level <= 7:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

// zstdCodec backs the "zstd" algorithm in pure-Go builds.
type zstdCodec struct{}

var _ codec = zstdCodec{}

func (zstdCodec) Compress(data []byte, level int) ([]byte, error) {
	p := zstdEncoderPools[zstdEncoderLevel(level)]
	encoder := p.Get().(*zstd.Encoder)
	defer p.Put(encoder)

	// EncodeAll is stateless, safe with a pooled encoder.
	return encoder.EncodeAll(data, nil), nil
}

func (zstdCodec) Decompress(data []byte, dstSize int) ([]byte, error) {
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	return decoder.DecodeAll(data, make([]byte, 0, dstSize))
}
