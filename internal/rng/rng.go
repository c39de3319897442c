// Package rng provides a deterministic string-seeded random stream.
package rng

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	seedHashMult  = 31
)

// RNG is a linear-congruential generator whose state is derived purely from a
// seed string. The same seed yields the same sequence on every platform.
type RNG struct {
	state uint32
}

// New folds the seed string into a 32-bit state via a multiply-add hash.
func New(seed string) *RNG {
	var h uint32
	for _, r := range seed {
		h = h*seedHashMult + uint32(r)
	}
	return &RNG{state: h}
}

// Float64 advances the state and returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / (1 << 32)
}

// Intn returns a value in [0, n) drawn from the stream.
func (r *RNG) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// Shuffle returns a permuted copy of xs using the Fisher-Yates walk from the
// last index down to 1. The input is never mutated.
func Shuffle[T any](xs []T, r *RNG) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
