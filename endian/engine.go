// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package combines the ByteOrder and AppendByteOrder interfaces from the
// standard encoding/binary package into a unified EndianEngine interface, so
// codec code can both read fixed-width words and append them to growing
// buffers through a single value.
//
// The base-N codec serializes big integers in network order, so most callers
// use GetBigEndianEngine:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, limb)
//
// The returned engines are immutable and stateless, and therefore safe for
// concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// The interface is satisfied by binary.BigEndian and binary.LittleEndian,
// making it fully compatible with existing code that accepts either.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
//
// Big-endian is the canonical byte order for basen buffers: the most
// significant byte of the encoded integer appears first.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
