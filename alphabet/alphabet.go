// Package alphabet defines the symbol tables used by the base-N codec.
//
// An Alphabet is an ordered, duplicate-free sequence of Unicode code points:
// the position of a symbol is its digit value. Alphabets are immutable after
// construction and safe for unsynchronized concurrent use, so a single table
// can be shared by any number of encoders and decoders.
package alphabet

import (
	"fmt"

	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/hash"
)

// MinSymbols is the smallest usable alphabet size. A radix below 2 cannot
// express positional notation.
const MinSymbols = 2

// Alphabet is an immutable digit<->symbol bijection.
//
// Symbols are full Unicode scalar values, not bytes: lookups compare by code
// point, so multi-byte UTF-8 symbols (such as the emoji of Base69) behave the
// same as ASCII ones.
type Alphabet struct {
	symbols []rune
	digits  map[rune]int
	id      uint64
}

// New creates an Alphabet from the ordered symbols of s.
//
// Construction fails with errs.ErrAlphabetTooSmall if s holds fewer than 2
// code points, and with errs.ErrDuplicateSymbol if any code point appears
// more than once.
func New(s string) (*Alphabet, error) {
	symbols := []rune(s)
	if len(symbols) < MinSymbols {
		return nil, fmt.Errorf("%w: got %d", errs.ErrAlphabetTooSmall, len(symbols))
	}

	digits := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if prev, ok := digits[r]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", errs.ErrDuplicateSymbol, r, prev, i)
		}
		digits[r] = i
	}

	return &Alphabet{
		symbols: symbols,
		digits:  digits,
		id:      hash.ID(s),
	}, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// alphabet variables with known-good symbol sets.
func MustNew(s string) *Alphabet {
	alpha, err := New(s)
	if err != nil {
		panic(err)
	}

	return alpha
}

// Radix returns the number of symbols N. Digit values range over [0, N).
func (a *Alphabet) Radix() int {
	return len(a.symbols)
}

// Symbol returns the symbol for the given digit value.
//
// The digit must lie in [0, Radix()); this precondition is enforced by the
// encoder, which only ever produces in-range digits. Out-of-range digits
// panic via the bounds check.
func (a *Alphabet) Symbol(digit int) rune {
	return a.symbols[digit]
}

// Digit returns the digit value for the given symbol, or a wrapped
// errs.ErrUnknownSymbol if the symbol is not a member of the alphabet.
func (a *Alphabet) Digit(symbol rune) (int, error) {
	digit, ok := a.digits[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownSymbol, symbol)
	}

	return digit, nil
}

// Contains reports whether symbol is a member of the alphabet.
func (a *Alphabet) Contains(symbol rune) bool {
	_, ok := a.digits[symbol]
	return ok
}

// ID returns the xxHash64 fingerprint of the alphabet's symbol string.
// Two alphabets with identical symbols in identical order share an ID.
func (a *Alphabet) ID() uint64 {
	return a.id
}

// String returns the alphabet's symbols in digit order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}

// Runes returns a copy of the alphabet's symbols in digit order.
func (a *Alphabet) Runes() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)

	return out
}
