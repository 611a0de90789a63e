package oblivious

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
	return []solver.Hint{indicatorHint}
}

// indicatorHint is used within [Indicators]. It outputs 1 on the wire whose
// position equals the index input and 0 on every other wire. It must be
// provided to the prover when a circuit uses it.
func indicatorHint(_ *big.Int, inputs []*big.Int, results []*big.Int) error {
	index := inputs[0]
	for i := 0; i < len(results); i++ {
		// i is an int which can be int32 or int64. We convert i to int64 then
		// to bigInt, which is safe. We should not convert index to int64.
		if index.Cmp(big.NewInt(int64(i))) == 0 {
			results[i].SetUint64(1)
		} else {
			results[i].SetUint64(0)
		}
	}
	return nil
}
