// Package compress provides the pluggable payload compression codecs used by
// the basen convenience layer.
//
// Compression is a wrapper stage around the base-N mapping, not part of it:
// the payload is compressed before radix encoding and decompressed after
// radix decoding. Because base-N output grows linearly with input size,
// compressing a redundant payload first can shrink the emitted symbol
// sequence considerably.
//
// All codecs operate on whole payloads. For any non-empty payload the Zstd,
// S2 and LZ4 outputs begin with a non-zero byte, so they survive the radix
// codec's leading-zero-byte collapse; raw payloads passed through the no-op
// codec do not carry that guarantee.
package compress
