//go:build cgo

package engine

import "github.com/valyala/gozstd"

const zstdLibrary = "valyala/gozstd"

var zstdVersion = moduleVersion("github.com/valyala/gozstd", "1.23.2")

// zstdCodec backs the "zstd" algorithm with the libzstd bindings when cgo
// is available.
type zstdCodec struct{}

var _ codec = zstdCodec{}

func (zstdCodec) Compress(data []byte, level int) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, level), nil
}

func (zstdCodec) Decompress(data []byte, dstSize int) ([]byte, error) {
	return gozstd.Decompress(make([]byte, 0, dstSize), data)
}
