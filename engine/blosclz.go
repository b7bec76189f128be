package engine

import "github.com/klauspost/compress/s2"

const bloscLZLibrary = "klauspost/compress/s2"

var bloscLZVersion = moduleVersion("github.com/klauspost/compress", "1.18.0")

// bloscLZCodec backs the "blosclz" algorithm, the engine's fast default.
// S2 fills the same niche the original BloscLZ does: very high throughput
// with moderate ratios on binary array data.
type bloscLZCodec struct{}

var _ codec = bloscLZCodec{}

func (bloscLZCodec) Compress(data []byte, level int) ([]byte, error) {
	switch {
	case level >= 8:
		return s2.EncodeBest(nil, data), nil
	case level >= 5:
		return s2.EncodeBetter(nil, data), nil
	default:
		return s2.Encode(nil, data), nil
	}
}

func (bloscLZCodec) Decompress(data []byte, dstSize int) ([]byte, error) {
	return s2.Decode(make([]byte, dstSize), data)
}
