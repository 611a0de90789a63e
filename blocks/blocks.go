// Package blocks turns byte buffers into the fixed-size units of the hashing
// pipeline: 64-byte message blocks and big-endian packed 32-bit words.
package blocks

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/std/rangecheck"
)

const (
	// BlockBytes is the byte size of one compression block.
	BlockBytes = 64
	// BlockWords is the number of 32-bit words in one block.
	BlockWords = 16
	// WordBytes is the byte size of one word.
	WordBytes = 4
)

var (
	// ErrBlockAlignment is returned when a buffer cannot be split into
	// 64-byte blocks. This is a hard precondition: callers must guarantee it
	// via standard padding before invocation.
	ErrBlockAlignment = errors.New("buffer length is not a positive multiple of 64 bytes")
	// ErrWordAlignment is returned when a buffer cannot be packed into
	// 4-byte words.
	ErrWordAlignment = errors.New("buffer length is not a multiple of 4 bytes")
)

// Split groups bytes into 64-byte message blocks.
func Split(in []uints.U8) ([][BlockBytes]uints.U8, error) {
	if len(in) == 0 || len(in)%BlockBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBlockAlignment, len(in))
	}
	blks := make([][BlockBytes]uints.U8, len(in)/BlockBytes)
	for i := range blks {
		copy(blks[i][:], in[i*BlockBytes:(i+1)*BlockBytes])
	}
	return blks, nil
}

// Words packs bytes four at a time, big-endian, into single field-element
// words. Each byte is range checked, so a word is zero exactly when all four
// of its bytes are zero. The packed form is what the padding verifier and
// the oblivious selectors consume.
func Words(api frontend.API, uapi *uints.BinaryField[uints.U32], in []uints.U8) ([]frontend.Variable, error) {
	if len(in)%WordBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrWordAlignment, len(in))
	}
	rc := rangecheck.New(api)
	for i := range in {
		rc.Check(in[i].Val, 8)
	}
	words := make([]frontend.Variable, len(in)/WordBytes)
	for i := range words {
		words[i] = uapi.ToValue(uapi.PackMSB(in[4*i], in[4*i+1], in[4*i+2], in[4*i+3]))
	}
	return words, nil
}
