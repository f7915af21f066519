package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestEndianEngine_RoundTrip(t *testing.T) {
	engines := []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()}
	values := []uint32{0, 1, 0xff, 0x10000, 0xdeadbeef, 0xffffffff}

	for _, engine := range engines {
		for _, val := range values {
			buf := engine.AppendUint32(nil, val)
			require.Len(t, buf, 4)
			require.Equal(t, val, engine.Uint32(buf))
		}
	}
}
