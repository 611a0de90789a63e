package oblivious_test

import (
	"fmt"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/Shigoto-dev19/gnark-dynamic-sha256/oblivious"
)

type selectWordCircuit struct {
	Sequence []frontend.Variable
	Index    frontend.Variable
	Expected frontend.Variable
}

func (c *selectWordCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(oblivious.SelectWord(api, c.Sequence, c.Index), c.Expected)
	return nil
}

func TestSelectWord(t *testing.T) {
	assert := test.NewAssert(t)
	values := []int{11, 22, 33, 44, 55, 66, 77, 88}
	circuit := &selectWordCircuit{Sequence: make([]frontend.Variable, len(values))}

	for i, v := range values {
		assert.Run(func(assert *test.Assert) {
			witness := &selectWordCircuit{
				Sequence: toVariables(values),
				Index:    i,
				Expected: v,
			}
			assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
		}, fmt.Sprintf("index=%d", i))
	}
}

func TestSelectWordInvalidIndex(t *testing.T) {
	assert := test.NewAssert(t)
	values := []int{11, 22, 33, 44}
	circuit := &selectWordCircuit{Sequence: make([]frontend.Variable, len(values))}

	for _, index := range []int{4, 100, -1} {
		assert.Run(func(assert *test.Assert) {
			witness := &selectWordCircuit{
				Sequence: toVariables(values),
				Index:    index,
				Expected: 11,
			}
			assert.Error(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
		}, fmt.Sprintf("index=%d", index))
	}
}

type selectDigestCircuit struct {
	Sequence []frontend.Variable
	Index    frontend.Variable
	Expected [8]frontend.Variable
}

func (c *selectDigestCircuit) Define(api frontend.API) error {
	out := oblivious.SelectDigest(api, c.Sequence, c.Index)
	for i := range out {
		api.AssertIsEqual(out[i], c.Expected[i])
	}
	return nil
}

func TestSelectDigest(t *testing.T) {
	assert := test.NewAssert(t)
	values := make([]int, 24) // three flattened states
	for i := range values {
		values[i] = 1000 + i
	}
	circuit := &selectDigestCircuit{Sequence: make([]frontend.Variable, len(values))}

	for _, index := range []int{0, 8, 16} {
		assert.Run(func(assert *test.Assert) {
			witness := &selectDigestCircuit{Sequence: toVariables(values), Index: index}
			for j := 0; j < 8; j++ {
				witness.Expected[j] = values[index+j]
			}
			assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
		}, fmt.Sprintf("index=%d", index))
	}

	// the eighth word of the selection must still be inside the sequence
	witness := &selectDigestCircuit{Sequence: toVariables(values), Index: 17}
	for j := 0; j < 7; j++ {
		witness.Expected[j] = values[17+j]
	}
	witness.Expected[7] = 0
	assert.Error(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
}

func toVariables(values []int) []frontend.Variable {
	out := make([]frontend.Variable, len(values))
	for i := range values {
		out[i] = values[i]
	}
	return out
}
