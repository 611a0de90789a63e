// Package dynamicsha256 computes SHA-256 digests of variable-length messages
// inside a fixed-size circuit.
//
// A compiled circuit has a fixed structure: it cannot branch on the actual
// message length, loop a data-dependent number of times or index an array at
// a secret position. This package hashes a message padded up to a declared
// maximum capacity, always compresses every block of that capacity, and then
// extracts the true digest from the sequence of intermediate hash states with
// an oblivious (branch-free) selection at a caller-supplied word offset. A
// zero-padding verifier pins the offset to the real content boundary so a
// malicious witness cannot select a structurally valid but wrong digest.
//
// The package also supports partial hashing: a 256-bit intermediate state
// computed outside the circuit over a block-aligned message prefix seeds the
// compression pipeline, and only the bounded remaining suffix is hashed
// in-circuit.
//
// The SHA-256 compression function itself is the [Compressor] dependency,
// backed by gnark's std/permutation/sha2 by default. Host-side helpers for
// producing correctly shaped inputs (standard padding, selector-based prefix
// splits) live in the padding subpackage.
package dynamicsha256
