package bank

import "math/rand/v2"

// Shuffle returns a Fisher–Yates shuffled copy of qs. The input is not
// modified.
func Shuffle(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample draws a uniform random sample of n questions without replacement.
// When n is zero, negative, or at least len(qs), the full set is returned
// in original order — never an empty set for a non-empty bank.
func Sample(qs []Question, n int) []Question {
	if n <= 0 || n >= len(qs) {
		out := make([]Question, len(qs))
		copy(out, qs)
		return out
	}
	return Shuffle(qs)[:n]
}
