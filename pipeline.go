package dynamicsha256

import (
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/std/permutation/sha2"
)

// Compressor is the trusted SHA-256 compression primitive: message-schedule
// expansion of one 512-bit block and 64 rounds folding it into the 256-bit
// state. It is injected as an interface so optimized implementations can be
// swapped without touching the selection and verification logic.
type Compressor interface {
	Compress(state [8]uints.U32, block [64]uints.U8) [8]uints.U32
}

type permuteCompressor struct {
	uapi *uints.BinaryField[uints.U32]
}

func (c permuteCompressor) Compress(state [8]uints.U32, block [64]uints.U8) [8]uints.U32 {
	return sha2.Permute(c.uapi, state, block)
}

// runPipeline compresses every block, unconditionally. states[0] is the seed
// and states[i+1] = Compress(states[i], blocks[i]). The full sequence is
// returned because the true content boundary is resolved afterwards by
// oblivious selection, never by loop bounds: cost is always one compression
// per capacity block regardless of where the real content ends.
func runPipeline(comp Compressor, seed [8]uints.U32, blks [][64]uints.U8) [][8]uints.U32 {
	states := make([][8]uints.U32, len(blks)+1)
	states[0] = seed
	for i := range blks {
		states[i+1] = comp.Compress(states[i], blks[i])
	}
	return states
}
