package puzzle

import "math/rand"

const maxShuffleAttempts = 10

// ReshuffleOuter returns a new arrangement of the outer letters. It retries a
// bounded number of times to avoid handing back the previous order; for
// degenerate inputs (fewer than two distinct letters) the same order may come
// back.
func ReshuffleOuter(prev []rune, rnd *rand.Rand) []rune {
	out := make([]rune, len(prev))
	copy(out, prev)
	if len(out) < 2 {
		return out
	}
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		rnd.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
		if !sameOrder(out, prev) {
			break
		}
	}
	return out
}

func sameOrder(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
