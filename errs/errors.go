// Package errs defines the sentinel errors shared across basen packages.
//
// Callers are expected to test error identity with errors.Is; call sites
// wrap these sentinels with fmt.Errorf("%w: ...") to attach context such
// as the offending symbol or its position.
package errs

import "errors"

var (
	// ErrAlphabetTooSmall indicates an alphabet with fewer than 2 symbols.
	// A radix below 2 cannot represent positional notation.
	ErrAlphabetTooSmall = errors.New("alphabet requires at least 2 symbols")

	// ErrDuplicateSymbol indicates an alphabet containing the same symbol
	// at two positions, which would break the digit<->symbol bijection.
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")

	// ErrUnknownSymbol indicates decode input containing a symbol that is
	// not a member of the configured alphabet.
	ErrUnknownSymbol = errors.New("symbol not in alphabet")

	// ErrUnknownAlphabet indicates a registry lookup for an alphabet name
	// or fingerprint that has not been registered.
	ErrUnknownAlphabet = errors.New("unknown alphabet")

	// ErrInvalidCompression indicates an unsupported compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
