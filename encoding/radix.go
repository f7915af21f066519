package encoding

import (
	"fmt"
	"math/bits"
	"unicode/utf8"

	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/internal/bignum"
	"github.com/arloliu/basen/internal/pool"
)

// RadixEncoder converts byte buffers into symbol sequences over a fixed
// alphabet.
//
// The encoder is stateless apart from its alphabet reference; scratch
// buffers are pooled per call, so a single RadixEncoder may be shared by
// concurrent goroutines.
type RadixEncoder struct {
	alpha *alphabet.Alphabet
}

// NewRadixEncoder creates a RadixEncoder over the given alphabet.
func NewRadixEncoder(alpha *alphabet.Alphabet) *RadixEncoder {
	return &RadixEncoder{alpha: alpha}
}

// Encode returns the symbol-sequence representation of data.
//
// The buffer is interpreted as an unsigned big-endian integer; the zero
// value (including the empty buffer) encodes to the single symbol for digit
// zero. Encode has no failure path and always terminates: every division
// step strictly shrinks the residual value.
func (e *RadixEncoder) Encode(data []byte) string {
	radix := uint32(e.alpha.Radix())

	var n bignum.Nat
	n.SetBytes(data)

	// Worst-case digit count: bit length of the value divided by the floor
	// of log2(radix), plus one. For radix 2 this degenerates to one digit
	// per bit.
	bound := len(data)*8/(bits.Len32(radix)-1) + 1
	digits, cleanup := pool.GetIntSlice(bound)
	defer cleanup()

	count := 0
	for !n.IsZero() {
		digits[count] = int(n.DivMod(radix))
		count++
	}
	if count == 0 {
		// Canonical zero: a single zero digit, never an empty sequence.
		digits[0] = 0
		count = 1
	}

	// Remainders come out least significant first; emit them reversed so the
	// most significant symbol leads.
	buf := pool.GetSymbolBuffer()
	defer pool.PutSymbolBuffer(buf)

	buf.Grow(count * utf8.UTFMax)
	for i := count - 1; i >= 0; i-- {
		buf.B = utf8.AppendRune(buf.B, e.alpha.Symbol(digits[i]))
	}

	return string(buf.Bytes())
}

// RadixDecoder converts symbol sequences back into byte buffers.
//
// Like RadixEncoder, it is stateless and safe for concurrent use.
type RadixDecoder struct {
	alpha *alphabet.Alphabet
}

// NewRadixDecoder creates a RadixDecoder over the given alphabet.
func NewRadixDecoder(alpha *alphabet.Alphabet) *RadixDecoder {
	return &RadixDecoder{alpha: alpha}
}

// Decode returns the byte buffer represented by the symbol sequence text.
//
// Symbols are resolved by code point. The first symbol that is not a member
// of the alphabet aborts the decode with a wrapped errs.ErrUnknownSymbol
// carrying the symbol and its index; no partial result is returned.
//
// The result is the minimal big-endian representation of the decoded value:
// leading zero bytes present before encoding are not restored, and the
// symbol for digit zero alone decodes to an empty buffer.
func (d *RadixDecoder) Decode(text string) ([]byte, error) {
	radix := uint32(d.alpha.Radix())

	acc := bignum.Zero()
	index := 0
	for _, symbol := range text {
		digit, err := d.alpha.Digit(symbol)
		if err != nil {
			return nil, fmt.Errorf("decode symbol at index %d: %w", index, err)
		}
		acc.MulAdd(radix, uint32(digit))
		index++
	}

	return acc.BigEndianBytes(), nil
}
