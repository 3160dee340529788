package engine

import (
	"fmt"
	"math"
)

// RNG supplies uniformly distributed integers for shuffling. Implementations
// may fail (an exhausted or broken entropy source); deck construction
// surfaces that error instead of dealing an unfair game.
type RNG interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// UniformIntN reduces a stream of uniform 64-bit words to [0, n) without
// modulo bias, rejecting words from the short tail of the range.
func UniformIntN(next func() (uint64, error), n int) (int, error) {
	if n <= 0 {
		panic(fmt.Sprintf("engine: UniformIntN called with n=%d", n))
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v, err := next()
		if err != nil {
			return 0, err
		}
		if v < limit {
			return int(v % bound), nil
		}
	}
}

// ---------------------------------------------------------------------------
// xorshift64 RNG
// ---------------------------------------------------------------------------

// XorShift is a small deterministic generator for tests and replays. It is
// not suitable for dealing real games.
type XorShift struct {
	state uint64
}

// NewXorShift seeds a generator. xorshift cannot start at 0, so a zero seed
// is corrected to 1.
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = 1
	}
	return &XorShift{state: seed}
}

// Uint64 advances the generator.
func (x *XorShift) Uint64() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

func (x *XorShift) IntN(n int) (int, error) {
	return UniformIntN(func() (uint64, error) { return x.Uint64(), nil }, n)
}
