package dynamicsha256

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/Shigoto-dev19/gnark-dynamic-sha256/blocks"
	"github.com/Shigoto-dev19/gnark-dynamic-sha256/oblivious"
	"github.com/Shigoto-dev19/gnark-dynamic-sha256/padding"
)

type config struct {
	seed        *[8]uints.U32
	prefixBytes frontend.Variable
	compressor  Compressor
}

// Option configures a [Hasher] at construction time.
type Option func(*config) error

// WithInitialState seeds the compression pipeline with a precomputed hash
// state instead of the standard initialization constants. prefixBytes is the
// byte length of the externally hashed prefix the state stands for; it is
// constrained in-circuit to a multiple of the block size, and the length
// field embedded in the remaining padded message must cover prefix and
// suffix together.
func WithInitialState(state [8]uints.U32, prefixBytes frontend.Variable) Option {
	return func(c *config) error {
		if c.seed != nil {
			return errors.New("initial state already set")
		}
		c.seed = &state
		c.prefixBytes = prefixBytes
		return nil
	}
}

// WithCompressor overrides the default permutation-backed compression
// primitive.
func WithCompressor(comp Compressor) Option {
	return func(c *config) error {
		if comp == nil {
			return errors.New("nil compressor")
		}
		c.compressor = comp
		return nil
	}
}

// Hasher is the fixed-cost SHA-256 gadget. The zero value is not usable; use
// [New].
type Hasher struct {
	api  frontend.API
	uapi *uints.BinaryField[uints.U32]
	comp Compressor

	seed        [8]uints.U32
	prefixBytes frontend.Variable
	in          []uints.U8
}

// New returns a hasher operating over the given API.
func New(api frontend.API, opts ...Option) (*Hasher, error) {
	cfg := new(config)
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	uapi, err := uints.New[uints.U32](api)
	if err != nil {
		return nil, fmt.Errorf("initializing uints: %w", err)
	}
	h := &Hasher{api: api, uapi: uapi, seed: InitialState(), prefixBytes: 0}
	if cfg.seed != nil {
		h.seed = *cfg.seed
		h.prefixBytes = cfg.prefixBytes
	}
	h.comp = cfg.compressor
	if h.comp == nil {
		h.comp = permuteCompressor{uapi: uapi}
	}
	return h, nil
}

// Write buffers padded message bytes. The total buffered length fixes the
// capacity of the call and must be a positive multiple of 64 when
// [Hasher.DynamicSum] is invoked.
func (h *Hasher) Write(data []uints.U8) {
	h.in = append(h.in, data...)
}

// DynamicSum returns the 32-byte digest of the content embedded in the
// buffered padded message. digestIndex is the word offset of the digest in
// the flattened sequence of per-block hash states: 8*(t-1) when the content
// and its standard padding occupy the first t blocks.
//
// Every capacity block is compressed; the digest is extracted by oblivious
// selection and the claimed boundary is verified against the zero filler and
// the embedded length field. A digestIndex that does not name the true
// boundary makes the circuit unsatisfiable.
func (h *Hasher) DynamicSum(digestIndex frontend.Variable) ([]uints.U8, error) {
	blks, err := blocks.Split(h.in)
	if err != nil {
		return nil, fmt.Errorf("splitting message: %w", err)
	}
	words, err := blocks.Words(h.api, h.uapi, h.in)
	if err != nil {
		return nil, fmt.Errorf("packing message words: %w", err)
	}

	log := logger.Logger()
	log.Debug().Int("blocks", len(blks)).Msg("building dynamic sha256")

	states := runPipeline(h.comp, h.seed, blks)
	flat := flattenStates(h.uapi, states[1:])

	padding.AssertZeroPadded(h.api, words, digestIndex)
	padding.AssertBoundaryLength(h.api, words, digestIndex, h.prefixBytes)

	selected := oblivious.SelectDigest(h.api, flat, digestIndex)
	digest := make([]uints.U8, 0, 32)
	for i := range selected {
		word := h.uapi.ValueOf(selected[i])
		digest = append(digest, h.uapi.UnpackMSB(word)...)
	}
	return digest, nil
}
