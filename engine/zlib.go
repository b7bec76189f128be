package engine

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

const zlibLibrary = "klauspost/compress/zlib"

var zlibVersion = moduleVersion("github.com/klauspost/compress", "1.18.0")

// zlibCodec backs the "zlib" algorithm. Engine levels 1-9 map directly to
// zlib levels.
type zlibCodec struct{}

var _ codec = zlibCodec{}

func (zlibCodec) Compress(data []byte, level int) ([]byte, error) {
	if level < zlib.BestSpeed {
		level = zlib.BestSpeed
	}

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (zlibCodec) Decompress(data []byte, dstSize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	dst := make([]byte, dstSize)
	if _, err := io.ReadFull(r, dst); err != nil {
		return nil, err
	}

	return dst, nil
}
