package blocks_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/Shigoto-dev19/gnark-dynamic-sha256/blocks"
)

func TestSplit(t *testing.T) {
	for _, n := range []int{0, 63, 65, 127} {
		_, err := blocks.Split(make([]uints.U8, n))
		require.ErrorIs(t, err, blocks.ErrBlockAlignment, "length %d", n)
	}

	in := make([]uints.U8, 128)
	for i := range in {
		in[i] = uints.NewU8(uint8(i))
	}
	blks, err := blocks.Split(in)
	require.NoError(t, err)
	require.Len(t, blks, 2)
	require.Equal(t, in[:64], blks[0][:])
	require.Equal(t, in[64:], blks[1][:])
}

type wordsCircuit struct {
	In       []uints.U8
	Expected []frontend.Variable
}

func (c *wordsCircuit) Define(api frontend.API) error {
	uapi, err := uints.New[uints.U32](api)
	if err != nil {
		return err
	}
	words, err := blocks.Words(api, uapi, c.In)
	if err != nil {
		return err
	}
	for i := range words {
		api.AssertIsEqual(words[i], c.Expected[i])
	}
	return nil
}

func TestWords(t *testing.T) {
	assert := test.NewAssert(t)

	in := []byte{0x01, 0x02, 0x03, 0x04, 0xff, 0x00, 0xab, 0xcd}
	witness := &wordsCircuit{
		In:       uints.NewU8Array(in),
		Expected: []frontend.Variable{0x01020304, 0xff00abcd},
	}
	circuit := &wordsCircuit{
		In:       make([]uints.U8, len(in)),
		Expected: make([]frontend.Variable, len(in)/4),
	}
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
}

type misalignedWordsCircuit struct {
	In []uints.U8
}

func (c *misalignedWordsCircuit) Define(api frontend.API) error {
	uapi, err := uints.New[uints.U32](api)
	if err != nil {
		return err
	}
	_, err = blocks.Words(api, uapi, c.In)
	return err
}

func TestWordsAlignment(t *testing.T) {
	assert := test.NewAssert(t)
	circuit := &misalignedWordsCircuit{In: make([]uints.U8, 7)}
	witness := &misalignedWordsCircuit{In: uints.NewU8Array(make([]byte, 7))}
	assert.Error(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
}
