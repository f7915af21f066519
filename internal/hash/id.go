package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// Alphabets use this as their fingerprint: two alphabets with the same
// symbols in the same order always produce the same ID.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
