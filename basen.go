// Package basen encodes arbitrary binary data as symbol sequences over a
// fixed base-N alphabet, and decodes them back.
//
// The codec treats a byte buffer as one unsigned big-endian integer and
// rewrites it in radix N using exact arbitrary-precision arithmetic; each
// digit maps to one symbol of the alphabet. The default alphabet is Base69,
// a 69-emoji set (U+1F600..U+1F644), but any alphabet of at least two
// unique code points works.
//
// # Basic Usage
//
// Encoding and decoding with the default Base69 alphabet:
//
//	import "github.com/arloliu/basen"
//
//	text := basen.Encode([]byte("Hello, World!"))
//	data, err := basen.Decode(text)
//
// Custom alphabet with payload compression:
//
//	alpha := alphabet.MustNew("0123456789abcdef")
//	codec, err := basen.New(alpha, basen.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	text, _ := codec.Encode(payload)
//	data, _ := codec.Decode(text)
//
// # Round-trip contract
//
// The codec round-trips the integer value of a buffer, not its length:
// leading zero bytes are collapsed, and the empty buffer encodes to the
// single symbol for digit zero. Callers that need exact byte-length
// preservation must carry the length out of band.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the alphabet
// and encoding packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package basen

import (
	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/compress"
	"github.com/arloliu/basen/encoding"
	"github.com/arloliu/basen/format"
	"github.com/arloliu/basen/internal/options"
)

// Codec combines an alphabet, a radix encoder/decoder pair and an optional
// payload compression stage.
//
// A Codec is immutable after New returns and safe for concurrent use.
type Codec struct {
	alpha       *alphabet.Alphabet
	encoder     *encoding.RadixEncoder
	decoder     *encoding.RadixDecoder
	compression format.CompressionType
	codec       compress.Codec
}

// Option is a functional option for configuring a Codec.
type Option = options.Option[*Codec]

// WithCompression selects the payload compression applied before encoding
// and after decoding. The default is format.CompressionNone.
func WithCompression(typ format.CompressionType) Option {
	return options.New(func(c *Codec) error {
		codec, err := compress.GetCodec(typ)
		if err != nil {
			return err
		}
		c.compression = typ
		c.codec = codec

		return nil
	})
}

// New creates a Codec over the given alphabet.
func New(alpha *alphabet.Alphabet, opts ...Option) (*Codec, error) {
	codec := &Codec{
		alpha:       alpha,
		encoder:     encoding.NewRadixEncoder(alpha),
		decoder:     encoding.NewRadixDecoder(alpha),
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
	}

	if err := options.Apply(codec, opts...); err != nil {
		return nil, err
	}

	return codec, nil
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *alphabet.Alphabet {
	return c.alpha
}

// Compression returns the codec's payload compression type.
func (c *Codec) Compression() format.CompressionType {
	return c.compression
}

// Encode compresses data with the configured payload codec and returns its
// symbol-sequence representation.
//
// With the default CompressionNone the call cannot fail and the returned
// error is always nil.
func (c *Codec) Encode(data []byte) (string, error) {
	payload, err := c.codec.Compress(data)
	if err != nil {
		return "", err
	}

	return c.encoder.Encode(payload), nil
}

// EncodeStats is like Encode but also reports the size effect of the
// compression stage.
func (c *Codec) EncodeStats(data []byte) (string, compress.Stats, error) {
	payload, err := c.codec.Compress(data)
	if err != nil {
		return "", compress.Stats{}, err
	}

	stats := compress.Stats{
		Algorithm:      c.compression,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(payload)),
	}

	return c.encoder.Encode(payload), stats, nil
}

// Decode resolves the symbol sequence text back into the byte buffer it was
// encoded from, reversing the compression stage if one is configured.
//
// The first symbol not in the alphabet aborts with a wrapped
// errs.ErrUnknownSymbol; no partial result is returned.
func (c *Codec) Decode(text string) ([]byte, error) {
	payload, err := c.decoder.Decode(text)
	if err != nil {
		return nil, err
	}

	return c.codec.Decompress(payload)
}

// defaultCodec is the process-wide Base69 codec behind the package-level
// Encode and Decode helpers. Construction cannot fail: the alphabet is a
// known-good builtin and no options are applied.
var defaultCodec, _ = New(alphabet.Base69)

// Encode encodes data with the default Base69 codec.
func Encode(data []byte) string {
	text, _ := defaultCodec.Encode(data)
	return text
}

// Decode decodes a Base69 symbol sequence produced by Encode.
func Decode(text string) ([]byte, error) {
	return defaultCodec.Decode(text)
}
