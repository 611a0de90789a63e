// Package oblivious implements secret-index reads over fixed word sequences.
//
// In a compiled circuit, native array indexing at a run-time position is not
// available: every read at a secret index is expressed as a linear
// combination of the whole sequence weighted by equality indicators, with an
// explicit uniqueness assertion. The indicator values themselves come from a
// hint and are only trusted because the assertions pin them.
package oblivious

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// Indicators returns the equality-indicator wires for index over n
// positions:
//
//	if i == index
//	    out[i] = 1
//	else
//	    out[i] = 0
//
// The sum of all indicators is asserted to be exactly 1, so an index outside
// [0, n) admits no solution. This assertion is the correctness proof of any
// selection built on top.
func Indicators(api frontend.API, n int, index frontend.Variable) []frontend.Variable {
	if n < 1 {
		panic("indicator decoder needs at least one position")
	}
	indicators, err := api.Compiler().NewHint(indicatorHint, n, index)
	if err != nil {
		panic(fmt.Sprintf("calling indicator hint: %v", err))
	}
	sum := frontend.Variable(0)
	for i := 0; i < n; i++ {
		// indicators[i] * (index - i) == 0
		api.AssertIsEqual(api.Mul(indicators[i], api.Sub(index, i)), 0)
		sum = api.Add(sum, indicators[i])
	}
	api.AssertIsEqual(sum, 1)
	return indicators
}

// SelectWord returns sequence[index] without the computation branching on
// index. The result is the dot product of the sequence with the indicator
// wires of [Indicators].
func SelectWord(api frontend.API, sequence []frontend.Variable, index frontend.Variable) frontend.Variable {
	eq := Indicators(api, len(sequence), index)
	out := frontend.Variable(0)
	for i := range sequence {
		out = api.MulAcc(out, eq[i], sequence[i])
	}
	return out
}

// SelectDigest extracts one digest, eight contiguous words starting at
// index. Each of the eight selections carries its own uniqueness assertion,
// so index+7 must also fall inside the sequence.
func SelectDigest(api frontend.API, sequence []frontend.Variable, index frontend.Variable) [8]frontend.Variable {
	var out [8]frontend.Variable
	for j := range out {
		out[j] = SelectWord(api, sequence, api.Add(index, j))
	}
	return out
}
