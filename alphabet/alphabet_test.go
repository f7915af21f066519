package alphabet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/basen/errs"
)

func TestNew_TooFewSymbols(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
	}{
		{"empty", ""},
		{"single symbol", "a"},
		{"single emoji", "😀"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alpha, err := New(tt.symbols)
			require.ErrorIs(t, err, errs.ErrAlphabetTooSmall)
			require.Nil(t, alpha)
		})
	}
}

func TestNew_DuplicateSymbol(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
	}{
		{"ascii duplicate", "abca"},
		{"adjacent duplicate", "bb"},
		{"emoji duplicate", "😀😁😀"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alpha, err := New(tt.symbols)
			require.ErrorIs(t, err, errs.ErrDuplicateSymbol)
			require.Nil(t, alpha)
		})
	}
}

func TestNew_MinimalAlphabet(t *testing.T) {
	alpha, err := New("01")
	require.NoError(t, err)
	require.Equal(t, 2, alpha.Radix())
}

func TestAlphabet_Bijection(t *testing.T) {
	for _, alpha := range []*Alphabet{Base69, Base62, Base58} {
		for d := 0; d < alpha.Radix(); d++ {
			got, err := alpha.Digit(alpha.Symbol(d))
			require.NoError(t, err)
			require.Equal(t, d, got)
		}
	}
}

func TestAlphabet_Digit_UnknownSymbol(t *testing.T) {
	_, err := Base69.Digit('A')
	require.ErrorIs(t, err, errs.ErrUnknownSymbol)

	_, err = Base62.Digit('😀')
	require.ErrorIs(t, err, errs.ErrUnknownSymbol)
}

func TestAlphabet_Contains(t *testing.T) {
	require.True(t, Base69.Contains('😀'))
	require.False(t, Base69.Contains('A'))
	require.True(t, Base62.Contains('A'))
}

func TestAlphabet_Symbol_CodePointLookup(t *testing.T) {
	// Symbols are compared by code point, not by raw UTF-8 bytes.
	require.Equal(t, '😀', Base69.Symbol(0))
	require.Equal(t, '\U0001F641', Base69.Symbol(65))
	require.Equal(t, '\U0001F644', Base69.Symbol(68))
}

func TestBuiltinRadixes(t *testing.T) {
	require.Equal(t, 69, Base69.Radix())
	require.Equal(t, 62, Base62.Radix())
	require.Equal(t, 58, Base58.Radix())
}

func TestAlphabet_ID(t *testing.T) {
	require.NotEqual(t, Base69.ID(), Base62.ID())
	require.NotEqual(t, Base62.ID(), Base58.ID())

	clone := MustNew(Base69.String())
	require.Equal(t, Base69.ID(), clone.ID())
}

func TestAlphabet_Runes_IsACopy(t *testing.T) {
	runes := Base62.Runes()
	runes[0] = 'X'
	require.Equal(t, '0', Base62.Symbol(0))
}

func TestLookup(t *testing.T) {
	alpha, err := Lookup("base69")
	require.NoError(t, err)
	require.Same(t, Base69, alpha)

	_, err = Lookup("base1337")
	require.ErrorIs(t, err, errs.ErrUnknownAlphabet)
}

func TestLookupID(t *testing.T) {
	alpha, err := LookupID(Base58.ID())
	require.NoError(t, err)
	require.Same(t, Base58, alpha)

	_, err = LookupID(0xdeadbeef)
	require.ErrorIs(t, err, errs.ErrUnknownAlphabet)
}

func TestRegister(t *testing.T) {
	hex := MustNew("0123456789abcdef")
	Register("base16-test", hex)

	alpha, err := Lookup("base16-test")
	require.NoError(t, err)
	require.Same(t, hex, alpha)
	require.Contains(t, Names(), "base16-test")
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { MustNew("aa") })
}
