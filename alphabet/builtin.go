package alphabet

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arloliu/basen/errs"
)

const (
	base62Symbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	base58Symbols = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// Base69 uses 69 consecutive emoji starting at U+1F600 (GRINNING FACE).
	base69First = 0x1F600
	base69Size  = 69
)

var (
	// Base69 is the default alphabet: 69 consecutive emoji code points,
	// U+1F600 through U+1F644. Digit 0 is 😀.
	Base69 = MustNew(base69String())

	// Base62 uses [0-9A-Za-z].
	Base62 = MustNew(base62Symbols)

	// Base58 uses the Bitcoin-style alphabet: [1-9A-Za-z] without the
	// visually ambiguous 0, O, I and l.
	Base58 = MustNew(base58Symbols)
)

func base69String() string {
	symbols := make([]rune, base69Size)
	for i := range symbols {
		symbols[i] = rune(base69First + i)
	}

	return string(symbols)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Alphabet{
		"base69": Base69,
		"base62": Base62,
		"base58": Base58,
	}
)

// Register adds an alphabet to the registry under the given name, replacing
// any previous registration. Registered alphabets are resolvable by Lookup
// and LookupID.
func Register(name string, alpha *Alphabet) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = alpha
}

// Lookup resolves a registered alphabet by name.
//
// Returns a wrapped errs.ErrUnknownAlphabet if no alphabet has been
// registered under the name.
func Lookup(name string) (*Alphabet, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	alpha, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownAlphabet, name)
	}

	return alpha, nil
}

// LookupID resolves a registered alphabet by its xxHash64 fingerprint.
//
// Returns a wrapped errs.ErrUnknownAlphabet if no registered alphabet
// carries the fingerprint.
func LookupID(id uint64) (*Alphabet, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, alpha := range registry {
		if alpha.ID() == id {
			return alpha, nil
		}
	}

	return nil, fmt.Errorf("%w: fingerprint 0x%016x", errs.ErrUnknownAlphabet, id)
}

// Names returns the sorted names of all registered alphabets.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
