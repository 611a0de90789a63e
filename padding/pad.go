// Package padding produces and verifies the extended SHA-256 padding used by
// the fixed-cost hasher.
//
// Host-side helpers build correctly shaped inputs: the standard padding
// trailer (0x80 marker, zero fill, 64-bit big-endian bit length) followed by
// zero filler blocks up to a declared capacity, and selector-based prefix
// splits for partial hashing. The in-circuit verifier proves that a claimed
// content boundary is consistent with that shape.
package padding

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const blockBytes = 64

var (
	// ErrCapacityAlignment is returned when the declared capacity is not a
	// multiple of the block size.
	ErrCapacityAlignment = errors.New("capacity is not a multiple of 64 bytes")
	// ErrCapacityTooSmall is returned when the capacity cannot hold the
	// message plus the standard padding trailer.
	ErrCapacityTooSmall = errors.New("capacity cannot hold message and standard padding")
	// ErrPrefixAlignment is returned when a precomputed prefix does not end
	// on a block boundary.
	ErrPrefixAlignment = errors.New("prefix length is not a multiple of 64 bytes")
)

// PaddingError reports a non-zero word beyond the claimed content boundary.
type PaddingError struct {
	// Index is the offending position, in flat word units of the padded
	// message.
	Index int
}

func (e *PaddingError) Error() string {
	return fmt.Sprintf("padding error at index %d", e.Index)
}

// blockCount returns the number of blocks occupied by contentLen bytes plus
// the standard trailer (1 marker byte and 8 length bytes).
func blockCount(contentLen int) int {
	return (contentLen + 9 + blockBytes - 1) / blockBytes
}

// Pad appends the standard SHA-256 padding to msg and zero filler up to
// capacity. It returns the padded buffer and the digest index: the word
// offset of the true digest in the flattened per-block state sequence,
// 8*(t-1) for t content blocks.
func Pad(msg []byte, capacity int) ([]byte, int, error) {
	return padWithLength(msg, uint64(len(msg)), capacity)
}

// PadSuffix pads the remaining suffix of a split message. prefixLen is the
// byte length of the externally hashed prefix; the embedded length field
// covers prefix and suffix together, as the standard requires for the final
// digest to equal the hash of the whole message.
func PadSuffix(suffix []byte, prefixLen, capacity int) ([]byte, int, error) {
	if prefixLen < 0 || prefixLen%blockBytes != 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrPrefixAlignment, prefixLen)
	}
	return padWithLength(suffix, uint64(prefixLen)+uint64(len(suffix)), capacity)
}

func padWithLength(content []byte, totalLen uint64, capacity int) ([]byte, int, error) {
	if capacity <= 0 || capacity%blockBytes != 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrCapacityAlignment, capacity)
	}
	if len(content)+9 > capacity {
		return nil, 0, fmt.Errorf("%w: %d bytes into %d", ErrCapacityTooSmall, len(content), capacity)
	}
	t := blockCount(len(content))
	buf := make([]byte, capacity)
	copy(buf, content)
	buf[len(content)] = 0x80
	binary.BigEndian.PutUint64(buf[t*blockBytes-8:], 8*totalLen)
	return buf, 8 * (t - 1), nil
}

// CheckZeroPadded is the host-side mirror of [AssertZeroPadded]: it verifies
// that every word at or beyond the boundary named by digestIndex is zero,
// and reports the first offending word otherwise. Useful for rejecting
// malformed inputs with a typed error before witness generation.
func CheckZeroPadded(padded []byte, digestIndex int) error {
	if len(padded) == 0 || len(padded)%blockBytes != 0 {
		return fmt.Errorf("%w: %d", ErrCapacityAlignment, len(padded))
	}
	paddingStart := (digestIndex + 8) * 2
	if paddingStart < 16 || paddingStart > len(padded)/4 {
		return fmt.Errorf("digest index %d names no block boundary", digestIndex)
	}
	for i := paddingStart * 4; i < len(padded); i++ {
		if padded[i] != 0 {
			return &PaddingError{Index: i / 4}
		}
	}
	return nil
}
