package engine

import "github.com/klauspost/compress/snappy"

const snappyLibrary = "klauspost/compress/snappy"

var snappyVersion = moduleVersion("github.com/klauspost/compress", "1.18.0")

// snappyCodec backs the "snappy" algorithm. Snappy has no level knob, so
// the engine level is ignored.
type snappyCodec struct{}

var _ codec = snappyCodec{}

func (snappyCodec) Compress(data []byte, _ int) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCodec) Decompress(data []byte, _ int) ([]byte, error) {
	return snappy.Decode(nil, data)
}
