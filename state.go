package dynamicsha256

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
)

var iv = uints.NewU32Array([]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A, 0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
})

// InitialState returns the standard SHA-256 initialization constants. It is
// the default seed of the compression pipeline when no precomputed state is
// supplied.
func InitialState() [8]uints.U32 {
	var s [8]uints.U32
	copy(s[:], iv)
	return s
}

// StateFromBytes interprets 32 bytes as 8 big-endian 32-bit words, producing
// a hash state usable as the pipeline seed in place of [InitialState]. No
// semantic validation is possible here: if the bytes are not a genuine
// intermediate state over some block-aligned prefix, the final digest is
// simply wrong. Callers needing that guarantee must bind the bytes to an
// independently verified value.
func StateFromBytes(uapi *uints.BinaryField[uints.U32], precomputed [32]uints.U8) [8]uints.U32 {
	var s [8]uints.U32
	for i := range s {
		s[i] = uapi.PackMSB(precomputed[4*i], precomputed[4*i+1], precomputed[4*i+2], precomputed[4*i+3])
	}
	return s
}

// flattenStates concatenates hash states into one flat word sequence, each
// word a single field element. This is the address space the oblivious
// selectors operate over.
func flattenStates(uapi *uints.BinaryField[uints.U32], states [][8]uints.U32) []frontend.Variable {
	flat := make([]frontend.Variable, 0, 8*len(states))
	for _, st := range states {
		for i := range st {
			flat = append(flat, uapi.ToValue(st[i]))
		}
	}
	return flat
}
