// Package encoding implements the radix conversion between byte buffers and
// symbol sequences.
//
// The encoder treats the input buffer as a single unsigned big-endian
// integer and repeatedly divides it by the alphabet radix, collecting
// remainders as digits; the decoder reverses the process with Horner's
// method. Both transforms are exact: they round-trip the integer *value* of
// the buffer, which means leading zero bytes are not preserved (an all-zero
// or empty buffer encodes to the single symbol for digit zero, and decodes
// back to an empty buffer).
//
// Encoders and decoders hold no per-call state and are safe for concurrent
// use once constructed.
package encoding
