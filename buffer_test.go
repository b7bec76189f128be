package blockpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockpack/format"
)

func TestBuffer_BytesAndLen(t *testing.T) {
	ctx := NewContext()
	buf := Compress(ctx, []uint32{1, 2, 3, 4})

	require.Equal(t, buf.Len(), len(buf.Bytes()))
	require.NotEmpty(t, buf.Bytes())
}

func TestBuffer_EqualityIgnoresElementType(t *testing.T) {
	ctx := NewContext().WithShuffle(format.ShuffleByte).WithTypeSize(4)

	// Same bytes compressed once as uint32 and once as int32: the erased
	// types differ but the buffers are structurally identical.
	u := []uint32{10, 20, 30, 40, 50, 60, 70, 80}
	i := make([]int32, len(u))
	for k, v := range u {
		i[k] = int32(v)
	}

	bu := Compress(ctx, u)
	bi := Compress(ctx, i)

	require.True(t, Equal(bu, bi))
	require.True(t, bytes.Equal(bu.Bytes(), bi.Bytes()))
	require.Equal(t, bu.Hash64(), bi.Hash64())
}

func TestBuffer_IntoBytesRoundTrip(t *testing.T) {
	data := []float64{3.14, 2.71, 1.61, 0.57}

	buf := Compress(NewContext(), data)

	// Erase the type binding, then re-assert it at the raw entry point.
	blob := buf.IntoBytes()
	decoded, err := DecompressBytes[float64](blob)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}
