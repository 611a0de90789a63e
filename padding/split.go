package padding

import (
	"bytes"
	"crypto/sha256"
	"encoding"
	"errors"
	"fmt"
)

// ErrSelectorNotFound is returned when the requested selector string does
// not occur in the message.
var ErrSelectorNotFound = errors.New("selector not found in message")

// Split carries the collaborator-produced inputs for partial hashing: an
// intermediate hash state over a block-aligned message prefix, computed by a
// trusted implementation outside the circuit, and the padded remainder.
type Split struct {
	// PrecomputedState is the 256-bit running state after absorbing the
	// prefix, eight big-endian 32-bit words.
	PrecomputedState [32]byte
	// PrefixBytes is the byte length of the prefix. Always a multiple of 64.
	PrefixBytes int
	// Remaining is the suffix padded to capacity.
	Remaining []byte
	// DigestIndex is the word offset of the final digest in the flattened
	// state sequence of the suffix blocks.
	DigestIndex int
}

// SplitAtSelector locates selector inside msg, splits the message at the
// block boundary preceding the match, hashes the prefix with the standard
// library and pads the remainder to capacity. An empty selector selects no
// split: the prefix is empty and the precomputed state is the standard
// initialization vector.
func SplitAtSelector(msg []byte, capacity int, selector string) (*Split, error) {
	prefixLen := 0
	if selector != "" {
		at := bytes.Index(msg, []byte(selector))
		if at < 0 {
			return nil, fmt.Errorf("%w: %q", ErrSelectorNotFound, selector)
		}
		prefixLen = at / blockBytes * blockBytes
	}
	state, err := IntermediateState(msg[:prefixLen])
	if err != nil {
		return nil, err
	}
	remaining, digestIndex, err := PadSuffix(msg[prefixLen:], prefixLen, capacity)
	if err != nil {
		return nil, err
	}
	return &Split{
		PrecomputedState: state,
		PrefixBytes:      prefixLen,
		Remaining:        remaining,
		DigestIndex:      digestIndex,
	}, nil
}

// IntermediateState returns the running 256-bit SHA-256 state after
// absorbing prefix, which must be block aligned so no bytes sit in the
// hasher's internal buffer. The state is read out of the standard library
// hasher's marshaled form: the "sha\x03" magic followed by the eight state
// words, big-endian.
func IntermediateState(prefix []byte) ([32]byte, error) {
	var state [32]byte
	if len(prefix)%blockBytes != 0 {
		return state, fmt.Errorf("%w: %d", ErrPrefixAlignment, len(prefix))
	}
	h := sha256.New()
	h.Write(prefix)
	m, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return state, errors.New("sha256 hasher does not expose its state")
	}
	raw, err := m.MarshalBinary()
	if err != nil {
		return state, fmt.Errorf("marshaling hash state: %w", err)
	}
	copy(state[:], raw[4:36])
	return state, nil
}
