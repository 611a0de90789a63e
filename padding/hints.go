package padding

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	// register hints
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hint functions used in this package. This method is
// useful for registering all hints in the solver.
func GetHints() []solver.Hint {
	return []solver.Hint{stepHint, boundaryHint}
}

// stepHint is used within [stepMask]. results[i] = 1 when i >= stepPosition
// and 0 otherwise. It must be provided to the prover when a circuit uses it.
func stepHint(_ *big.Int, inputs []*big.Int, results []*big.Int) error {
	step := inputs[0]
	for i := 0; i < len(results); i++ {
		if big.NewInt(int64(i)).Cmp(step) >= 0 {
			results[i].SetUint64(1)
		} else {
			results[i].SetUint64(0)
		}
	}
	return nil
}

// boundaryHint recovers the quantities [AssertBoundaryLength] asserts over:
// the byte length encoded by the bit-length field, the block count implied
// by the suffix length, and the prefix block count. All three are pinned by
// assertions afterwards; a malformed witness simply produces values the
// assertions reject.
func boundaryHint(_ *big.Int, inputs []*big.Int, results []*big.Int) error {
	bitLen, prefixBytes := inputs[0], inputs[1]
	byteLen := new(big.Int).Rsh(bitLen, 3)
	results[0].Set(byteLen)

	suffix := new(big.Int).Sub(byteLen, prefixBytes)
	if suffix.Sign() < 0 {
		suffix.SetUint64(0)
	}
	t := new(big.Int).Add(suffix, big.NewInt(9+63))
	results[1].Div(t, big.NewInt(64))

	results[2].Div(prefixBytes, big.NewInt(64))
	return nil
}
