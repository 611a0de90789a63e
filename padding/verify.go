package padding

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
	"github.com/consensys/gnark/std/math/cmp"

	"github.com/Shigoto-dev19/gnark-dynamic-sha256/oblivious"
)

// AssertZeroPadded proves that every message word at or beyond the claimed
// content boundary is zero. messageWords is the flattened padded message, 16
// words per block; digestIndex is the word offset of the digest in the
// flattened per-block state sequence, 8 words per block, so the boundary in
// message words is
//
//	paddingStart = (digestIndex + 8) * 2
//
// the first word of the zero filler. Any non-zero word from the boundary on
// makes the circuit unsatisfiable, so extra bytes appended after the
// legitimate padded content, or a boundary claimed earlier than the true one
// (whose tail then contains the non-zero length field), cannot pass.
func AssertZeroPadded(api frontend.API, messageWords []frontend.Variable, digestIndex frontend.Variable) {
	paddingStart := api.Mul(api.Add(digestIndex, 8), 2)
	mask := stepMask(api, len(messageWords), paddingStart)
	for i := range messageWords {
		api.AssertIsEqual(api.Mul(mask[i], messageWords[i]), 0)
	}
}

// stepMask returns a step function of length n: out[i] = 0 for
// i < stepPosition and 1 otherwise. The values are obtained as a hint and
// constrained to step exactly once, at stepPosition. stepPosition must lie
// in [1, n], otherwise no proof can be generated.
func stepMask(api frontend.API, n int, stepPosition frontend.Variable) []frontend.Variable {
	out, err := api.Compiler().NewHint(stepHint, n+1, stepPosition)
	if err != nil {
		panic(fmt.Sprintf("calling step hint: %v", err))
	}
	api.AssertIsEqual(out[0], 0)
	api.AssertIsEqual(out[n], 1)
	for i := 1; i <= n; i++ {
		// (out[i] - out[i-1]) * (i - stepPosition) == 0
		api.AssertIsEqual(api.Mul(api.Sub(out[i], out[i-1]), api.Sub(i, stepPosition)), 0)
	}
	return out[:n]
}

// AssertBoundaryLength binds digestIndex to the 64-bit length field that
// standard padding embeds in the last content block. The zero-tail check of
// [AssertZeroPadded] alone accepts any boundary claimed *later* than the
// true one, since its tail is a subset of the true zero filler; reading the
// length field at the claimed boundary and requiring the block count it
// implies to match digestIndex closes that gap.
//
// prefixBytes is the byte length of the externally hashed prefix in partial
// hashing (zero for single-shot hashing); it is constrained to a multiple of
// 64. With suffixLen the embedded byte length minus prefixBytes and t the
// claimed block count, the assertions are
//
//	digestIndex == 8*(t-1)
//	64*(t-1) <= suffixLen+8 and suffixLen+9 <= 64*t
//
// which hold for exactly one t per well-formed message.
func AssertBoundaryLength(api frontend.API, messageWords []frontend.Variable, digestIndex, prefixBytes frontend.Variable) {
	paddingStart := api.Mul(api.Add(digestIndex, 8), 2)
	hi := oblivious.SelectWord(api, messageWords, api.Sub(paddingStart, 2))
	lo := oblivious.SelectWord(api, messageWords, api.Sub(paddingStart, 1))
	bitLen := api.Add(api.Mul(hi, new(big.Int).Lsh(big.NewInt(1), 32)), lo)

	outs, err := api.Compiler().NewHint(boundaryHint, 3, bitLen, prefixBytes)
	if err != nil {
		panic(fmt.Sprintf("calling boundary hint: %v", err))
	}
	byteLen, t, prefixBlocks := outs[0], outs[1], outs[2]

	api.AssertIsEqual(api.Mul(byteLen, 8), bitLen)
	api.AssertIsEqual(api.Mul(prefixBlocks, 64), prefixBytes)
	api.AssertIsEqual(api.Mul(api.Sub(t, 1), 8), digestIndex)

	// the hint outputs are only trusted in range
	_ = bits.ToBinary(api, byteLen, bits.WithNbDigits(64))
	_ = bits.ToBinary(api, t, bits.WithNbDigits(32))
	_ = bits.ToBinary(api, prefixBlocks, bits.WithNbDigits(32))
	suffixLen := api.Sub(byteLen, prefixBytes)
	_ = bits.ToBinary(api, suffixLen, bits.WithNbDigits(64))

	comparator := cmp.NewBoundedComparator(api, new(big.Int).Lsh(big.NewInt(1), 70), false)
	comparator.AssertIsLessEq(api.Mul(api.Sub(t, 1), 64), api.Add(suffixLen, 8))
	comparator.AssertIsLessEq(api.Add(suffixLen, 9), api.Mul(t, 64))
}
