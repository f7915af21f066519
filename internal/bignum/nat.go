// Package bignum implements the arbitrary-precision unsigned integer
// arithmetic backing the radix codec.
//
// It is intentionally not a general bignum library: radix conversion only
// needs construction from big-endian bytes, serialization back to minimal
// big-endian bytes, division by a single-limb divisor and multiply-add by a
// single-limb multiplier. Both scans touch each limb exactly once, so a
// DivMod or MulAdd call costs O(limbs).
package bignum

import (
	"math/bits"

	"github.com/arloliu/basen/endian"
)

const (
	limbBits  = 32
	limbBytes = 4
)

// Nat is an arbitrary-precision unsigned integer stored as 32-bit limbs,
// least significant limb first.
//
// Invariant: limbs carries no superfluous leading (most significant) zero
// limb. The canonical zero value holds exactly one zero limb, so a Nat
// produced by any constructor or operation always has at least one limb.
//
// The zero-value Nat is not canonical; obtain instances through SetBytes
// or Zero.
type Nat struct {
	limbs []uint32
}

// Zero returns a canonical zero Nat.
func Zero() *Nat {
	return &Nat{limbs: []uint32{0}}
}

// SetBytes interprets buf as an unsigned integer in big-endian byte order
// and stores it into n, reusing n's limb storage when capacity allows.
// An empty buffer yields zero. Leading zero bytes do not change the value.
//
// It returns n for chaining.
func (n *Nat) SetBytes(buf []byte) *Nat {
	count := (len(buf) + limbBytes - 1) / limbBytes
	if count == 0 {
		count = 1
	}
	if cap(n.limbs) < count {
		n.limbs = make([]uint32, count)
	} else {
		n.limbs = n.limbs[:count]
	}

	// Walk the buffer from its least significant end, packing 4 bytes per limb.
	end := len(buf)
	for i := range n.limbs {
		start := end - limbBytes
		if start < 0 {
			start = 0
		}
		var limb uint32
		for _, b := range buf[start:end] {
			limb = limb<<8 | uint32(b)
		}
		n.limbs[i] = limb
		end = start
	}

	n.trim()

	return n
}

// IsZero reports whether n is zero.
func (n *Nat) IsZero() bool {
	return len(n.limbs) == 1 && n.limbs[0] == 0
}

// Equal reports whether n and other represent the same value.
func (n *Nat) Equal(other *Nat) bool {
	if len(n.limbs) != len(other.limbs) {
		return false
	}
	for i, limb := range n.limbs {
		if other.limbs[i] != limb {
			return false
		}
	}

	return true
}

// DivMod divides n by d in place and returns the remainder.
//
// The divisor must satisfy 0 < d; in the codec it is the alphabet radix,
// which always fits a single limb. The quotient replaces n's value and the
// returned remainder lies in [0, d).
func (n *Nat) DivMod(d uint32) uint32 {
	if d == 0 {
		panic("bignum: division by zero")
	}

	var rem uint64
	for i := len(n.limbs) - 1; i >= 0; i-- {
		cur := rem<<limbBits | uint64(n.limbs[i])
		n.limbs[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}

	n.trim()

	return uint32(rem)
}

// MulAdd replaces n with n*m + a in place.
//
// Both the multiplier and the addend must fit a single limb; in the codec
// m is the alphabet radix and a is the next digit, so a < m always holds.
func (n *Nat) MulAdd(m, a uint32) {
	carry := uint64(a)
	for i, limb := range n.limbs {
		cur := uint64(limb)*uint64(m) + carry
		n.limbs[i] = uint32(cur)
		carry = cur >> limbBits
	}
	if carry != 0 {
		n.limbs = append(n.limbs, uint32(carry))
	}
}

// BigEndianBytes returns the shortest big-endian byte representation of n,
// with no leading zero byte. Zero yields nil.
func (n *Nat) BigEndianBytes() []byte {
	if n.IsZero() {
		return nil
	}

	engine := endian.GetBigEndianEngine()
	top := n.limbs[len(n.limbs)-1]
	topBytes := (bits.Len32(top) + 7) / 8

	out := make([]byte, 0, topBytes+(len(n.limbs)-1)*limbBytes)

	// The most significant limb is emitted without its leading zero bytes;
	// all remaining limbs are emitted in full width.
	var scratch [limbBytes]byte
	engine.PutUint32(scratch[:], top)
	out = append(out, scratch[limbBytes-topBytes:]...)
	for i := len(n.limbs) - 2; i >= 0; i-- {
		out = engine.AppendUint32(out, n.limbs[i])
	}

	return out
}

// LimbCount returns the number of limbs currently in use. Canonical zero
// reports one limb.
func (n *Nat) LimbCount() int {
	return len(n.limbs)
}

// trim restores the leading-zero-limb invariant after an operation that may
// have shortened the value, always preserving at least one limb.
func (n *Nat) trim() {
	end := len(n.limbs)
	for end > 1 && n.limbs[end-1] == 0 {
		end--
	}
	if end == 0 {
		n.limbs = append(n.limbs[:0], 0)
		return
	}
	n.limbs = n.limbs[:end]
}
