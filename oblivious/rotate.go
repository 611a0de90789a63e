package oblivious

import (
	"errors"
	"fmt"
	stdbits "math/bits"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

var (
	// ErrRunTooLong is returned when the requested run does not fit in the
	// sequence.
	ErrRunTooLong = errors.New("run length exceeds sequence length")
	// ErrSequenceTooShort is returned for sequences too short to rotate.
	ErrSequenceTooShort = errors.New("sequence needs at least two words")
)

// SelectRun returns runLength contiguous words starting at start. Instead of
// one indicator scan per output word, the whole sequence is rotated by start
// using one conditional blend pass per bit of start; after all passes,
// position i holds sequence[(i + start) mod len(sequence)] and the first
// runLength positions are the answer. This costs O(log n) blend passes
// rather than one O(n) scan per word.
//
// start is constrained to [1, 2^ceil(log2(len))); index 0 is reserved as an
// always-invalid sentinel and rejected. Rotation composes modulo
// len(sequence), so a start beyond the sequence aliases; that region is
// excluded by the domain invariant checked on the output: every selected
// word is asserted non-zero, as the run is expected to come from a match
// region that never contains the reserved zero marker.
func SelectRun(api frontend.API, sequence []frontend.Variable, start frontend.Variable, runLength int) ([]frontend.Variable, error) {
	n := len(sequence)
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", ErrSequenceTooShort, n)
	}
	if runLength <= 0 || runLength > n {
		return nil, fmt.Errorf("%w: %d of %d", ErrRunTooLong, runLength, n)
	}
	api.AssertIsDifferent(start, 0)

	nbBits := stdbits.Len(uint(n - 1))
	selBits := bits.ToBinary(api, start, bits.WithNbDigits(nbBits))

	cur := make([]frontend.Variable, n)
	copy(cur, sequence)
	next := make([]frontend.Variable, n)
	for j := 0; j < nbBits; j++ {
		shift := (1 << j) % n
		for i := 0; i < n; i++ {
			next[i] = api.Select(selBits[j], cur[(i+shift)%n], cur[i])
		}
		cur, next = next, cur
	}

	out := make([]frontend.Variable, runLength)
	copy(out, cur[:runLength])
	for i := range out {
		api.AssertIsDifferent(out[i], 0)
	}
	return out, nil
}
