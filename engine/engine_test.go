package engine

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockpack/errs"
	"github.com/arloliu/blockpack/format"
)

func compressibleData(n int) []byte {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, n)
	for i := range data {
		// A small alphabet with runs keeps every codec comfortably below
		// the verbatim fallback threshold.
		data[i] = byte('a' + rng.Intn(4))
	}

	return data
}

func roundTrip(t *testing.T, src []byte, p Params) []byte {
	t.Helper()

	dst := make([]byte, len(src)+MaxOverhead)
	n, err := Compress(dst, src, p)
	require.NoError(t, err)
	require.LessOrEqual(t, n, len(src)+MaxOverhead)

	out := make([]byte, len(src))
	m, err := Decompress(out, dst[:n], 1)
	require.NoError(t, err)
	require.Equal(t, len(src), m)

	return out[:m]
}

func TestCompress_RoundTripAllCodecs(t *testing.T) {
	src := compressibleData(10000)

	for _, lib := range complibs {
		t.Run(lib.name, func(t *testing.T) {
			out := roundTrip(t, src, Params{TypeSize: 4, Level: 5, Algorithm: lib.name})
			require.True(t, bytes.Equal(src, out))
		})
	}
}

func TestCompress_RoundTripShuffles(t *testing.T) {
	src := compressibleData(8192)

	tests := []struct {
		name     string
		shuffle  format.Shuffle
		typeSize int
	}{
		{name: "no shuffle", shuffle: format.ShuffleNone, typeSize: 4},
		{name: "byte shuffle", shuffle: format.ShuffleByte, typeSize: 4},
		{name: "byte shuffle single byte", shuffle: format.ShuffleByte, typeSize: 1},
		{name: "bit shuffle", shuffle: format.ShuffleBit, typeSize: 8},
		{name: "byte shuffle with remainder", shuffle: format.ShuffleByte, typeSize: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{TypeSize: tt.typeSize, Level: 3, Shuffle: tt.shuffle, Algorithm: "lz4"}
			out := roundTrip(t, src, p)
			require.True(t, bytes.Equal(src, out))
		})
	}
}

func TestCompress_LevelZeroStoresVerbatim(t *testing.T) {
	src := compressibleData(1000)

	dst := make([]byte, len(src)+MaxOverhead)
	n, err := Compress(dst, src, Params{TypeSize: 1, Level: 0, Algorithm: "blosclz"})
	require.NoError(t, err)
	require.Equal(t, len(src)+headerSize, n)
	require.Equal(t, src, dst[headerSize:n])
}

func TestCompress_IncompressibleFallsBackToVerbatim(t *testing.T) {
	// Random bytes do not compress; the block must stay within MaxOverhead.
	src := make([]byte, 4096)
	rand.New(rand.NewSource(99)).Read(src)

	for _, lib := range complibs {
		t.Run(lib.name, func(t *testing.T) {
			dst := make([]byte, len(src)+MaxOverhead)
			n, err := Compress(dst, src, Params{TypeSize: 1, Level: 9, Algorithm: lib.name})
			require.NoError(t, err)
			require.LessOrEqual(t, n, len(src)+MaxOverhead)

			out := make([]byte, len(src))
			m, err := Decompress(out, dst[:n], 1)
			require.NoError(t, err)
			require.Equal(t, src, out[:m])
		})
	}
}

func TestCompress_EmptyInput(t *testing.T) {
	dst := make([]byte, MaxOverhead)
	n, err := Compress(dst, nil, Params{TypeSize: 4, Level: 5, Algorithm: "zstd"})
	require.NoError(t, err)
	require.Equal(t, headerSize, n)

	m, err := Decompress(nil, dst[:n], 1)
	require.NoError(t, err)
	require.Equal(t, 0, m)
}

func TestCompress_UnknownAlgorithm(t *testing.T) {
	dst := make([]byte, 100+MaxOverhead)
	_, err := Compress(dst, make([]byte, 100), Params{TypeSize: 1, Level: 5, Algorithm: "invalid"})
	require.ErrorIs(t, err, errs.ErrUnknownCodec)
}

func TestCompress_InvalidLevel(t *testing.T) {
	dst := make([]byte, 100+MaxOverhead)
	_, err := Compress(dst, make([]byte, 100), Params{TypeSize: 1, Level: 10, Algorithm: "lz4"})
	require.ErrorIs(t, err, errs.ErrInvalidLevel)
}

func TestCompress_InputSizeBound(t *testing.T) {
	// The bound check is exercised directly so the test does not need a
	// multi-gigabyte allocation.
	require.NoError(t, checkSrcSize(0))
	require.NoError(t, checkSrcSize(MaxBufferSize))
	require.ErrorIs(t, checkSrcSize(MaxBufferSize+1), errs.ErrDataTooLarge)
}

func TestCompress_DstTooSmall(t *testing.T) {
	src := compressibleData(1000)
	dst := make([]byte, len(src)+MaxOverhead-1)
	_, err := Compress(dst, src, Params{TypeSize: 1, Level: 5, Algorithm: "lz4"})
	require.ErrorIs(t, err, errs.ErrDstTooSmall)
}

func TestCompress_OversizedTypeSizeTreatedAsOne(t *testing.T) {
	src := compressibleData(2048)

	dst := make([]byte, len(src)+MaxOverhead)
	n, err := Compress(dst, src, Params{TypeSize: 1024, Level: 3, Shuffle: format.ShuffleByte, Algorithm: "lz4"})
	require.NoError(t, err)

	info, err := BlockInfo(dst[:n])
	require.NoError(t, err)
	require.Equal(t, len(src), info.UncompressedSize)

	out := make([]byte, len(src))
	m, err := Decompress(out, dst[:n], 1)
	require.NoError(t, err)
	require.Equal(t, src, out[:m])
}

func TestBlockInfo(t *testing.T) {
	src := compressibleData(10000)

	dst := make([]byte, len(src)+MaxOverhead)
	n, err := Compress(dst, src, Params{TypeSize: 4, Level: 5, Algorithm: "zstd", BlockSize: 4096})
	require.NoError(t, err)

	info, err := BlockInfo(dst[:n])
	require.NoError(t, err)
	require.Equal(t, len(src), info.UncompressedSize)
	require.Equal(t, n, info.CompressedSize)
	require.Equal(t, 4096, info.BlockSize)
}

func TestBlockInfo_InvalidInput(t *testing.T) {
	_, err := BlockInfo(nil)
	require.ErrorIs(t, err, errs.ErrInvalidHeader)

	_, err = BlockInfo(make([]byte, 8))
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestDecompress_ZeroFilledBuffer(t *testing.T) {
	// Too short to be a block, and an invalid version even at full size;
	// both must error, never crash.
	_, err := Decompress(make([]byte, 100), make([]byte, 8), 1)
	require.Error(t, err)

	_, err = Decompress(make([]byte, 100), make([]byte, 64), 1)
	require.Error(t, err)
}

func TestDecompress_CorruptedPayload(t *testing.T) {
	src := compressibleData(4096)

	dst := make([]byte, len(src)+MaxOverhead)
	n, err := Compress(dst, src, Params{TypeSize: 1, Level: 5, Algorithm: "zstd"})
	require.NoError(t, err)
	require.Less(t, n, len(src)) // compressed, not verbatim

	// Flip payload bytes past the header.
	corrupted := bytes.Clone(dst[:n])
	for i := headerSize; i < len(corrupted); i++ {
		corrupted[i] ^= 0xFF
	}

	out := make([]byte, len(src))
	_, err = Decompress(out, corrupted, 1)
	require.Error(t, err)
}

func TestDecompress_DstTooSmall(t *testing.T) {
	src := compressibleData(1000)

	dst := make([]byte, len(src)+MaxOverhead)
	n, err := Compress(dst, src, Params{TypeSize: 1, Level: 5, Algorithm: "lz4"})
	require.NoError(t, err)

	out := make([]byte, len(src)-1)
	_, err = Decompress(out, dst[:n], 1)
	require.ErrorIs(t, err, errs.ErrDstTooSmall)
}

func TestDecompress_TruncatedBlock(t *testing.T) {
	src := compressibleData(4096)

	dst := make([]byte, len(src)+MaxOverhead)
	n, err := Compress(dst, src, Params{TypeSize: 1, Level: 5, Algorithm: "lz4"})
	require.NoError(t, err)

	out := make([]byte, len(src))
	_, err = Decompress(out, dst[:n/2], 1)
	require.ErrorIs(t, err, errs.ErrInvalidData)
}

func TestComplibInfo(t *testing.T) {
	for _, lib := range complibs {
		t.Run(lib.name, func(t *testing.T) {
			library, version, err := ComplibInfo(lib.name)
			require.NoError(t, err)
			require.NotEmpty(t, library)
			require.NotEmpty(t, version)
		})
	}
}

func TestComplibInfo_Unknown(t *testing.T) {
	_, _, err := ComplibInfo("invalid")
	require.ErrorIs(t, err, errs.ErrUnknownCodec)
}

func TestModuleVersion_Fallback(t *testing.T) {
	// An unknown module path falls back to the compiled-in default.
	require.Equal(t, "0.0.0", moduleVersion("example.com/not/a/dependency", "0.0.0"))
}

func TestChooseBlockSize(t *testing.T) {
	tests := []struct {
		name     string
		nbytes   int
		level    int
		hint     int
		expected int
	}{
		{name: "hint honored", nbytes: 1 << 20, level: 5, hint: 65536, expected: 65536},
		{name: "hint clamped to input", nbytes: 100, level: 5, hint: 65536, expected: 100},
		{name: "automatic low level", nbytes: 1 << 20, level: 2, expected: 64 * 1024},
		{name: "automatic mid level", nbytes: 1 << 20, level: 5, expected: 128 * 1024},
		{name: "automatic high level", nbytes: 1 << 20, level: 9, expected: 256 * 1024},
		{name: "small input", nbytes: 1000, level: 9, expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, chooseBlockSize(tt.nbytes, tt.level, tt.hint))
		})
	}
}
