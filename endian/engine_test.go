package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNative_MatchesHostOrder(t *testing.T) {
	engine := Native()

	var v uint32 = 0x01020304
	buf := engine.AppendUint32(nil, v)
	require.Len(t, buf, 4)
	require.Equal(t, v, engine.Uint32(buf))

	if IsNativeLittleEndian() {
		require.Equal(t, byte(0x04), buf[0])
	} else {
		require.Equal(t, byte(0x01), buf[0])
	}
}

func TestGetEngines(t *testing.T) {
	require.Equal(t, EndianEngine(binary.LittleEndian), GetLittleEndianEngine())
	require.Equal(t, EndianEngine(binary.BigEndian), GetBigEndianEngine())
}
