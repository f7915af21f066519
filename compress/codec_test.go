package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/format"
)

var compressTestPayload = bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 32)

func TestCodec_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(compressTestPayload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, compressTestPayload, decompressed)
		})
	}
}

func TestCodec_CompressesRedundantPayload(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(compressTestPayload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(compressTestPayload))
		})
	}
}

func TestCodec_NonEmptyOutputHasNonZeroLeadingByte(t *testing.T) {
	// The radix codec collapses leading zero bytes, so compressed payloads
	// must never start with one.
	types := []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, typ := range types {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress([]byte{0x00, 0x01, 0x02, 0x03})
		require.NoError(t, err)
		require.NotEmpty(t, compressed)
		require.NotZero(t, compressed[0], "%s output must not start with a zero byte", typ)
	}
}

func TestNoOpCompressor_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()

	data := []byte{0x01, 0x02}
	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	out, err = codec.Decompress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestCodec_EmptyPayload(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestGetCodec_Invalid(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xff))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestStats(t *testing.T) {
	s := Stats{
		Algorithm:      format.CompressionZstd,
		OriginalSize:   1000,
		CompressedSize: 250,
	}

	require.InDelta(t, 0.25, s.Ratio(), 1e-9)
	require.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)

	empty := Stats{}
	require.Zero(t, empty.Ratio())
}
