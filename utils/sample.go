package utils

import "math/rand"

// Sample returns up to n elements drawn uniformly at random from items,
// without replacement. The input slice is left untouched. No repeatable seed
// is required by any caller.
func Sample[T any](items []T, n int) []T {
	if n >= len(items) {
		out := make([]T, len(items))
		copy(out, items)
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	idx := rand.Perm(len(items))
	out := make([]T, 0, n)
	for _, i := range idx[:n] {
		out = append(out, items[i])
	}
	return out
}
