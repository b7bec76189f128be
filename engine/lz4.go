package engine

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

const lz4Library = "pierrec/lz4"

var lz4Version = moduleVersion("github.com/pierrec/lz4/v4", "4.1.22")

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4Codec backs both the "lz4" and "lz4hc" algorithms using the block
// (frame-less) API. The two share a Decompress path; only the compressor
// differs.
type lz4Codec struct {
	hc bool
}

var _ codec = lz4Codec{}

// lz4HCLevels maps engine levels 0-9 onto pierrec's HC level constants.
var lz4HCLevels = [10]lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

func (c lz4Codec) Compress(data []byte, level int) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	// CompressBlock returns n == 0 for incompressible input; the engine
	// treats an empty result as a verbatim-storage request.
	if c.hc {
		hc := lz4.CompressorHC{Level: lz4HCLevels[level]}
		n, err := hc.CompressBlock(data, dst)
		if err != nil {
			return nil, err
		}

		return dst[:n], nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

func (c lz4Codec) Decompress(data []byte, dstSize int) ([]byte, error) {
	dst := make([]byte, dstSize)
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
