// Package sequence produces the randomized submission orders used when
// handing worker identifiers to the executor. Scrambling the order in
// which workers are launched adds scheduling variability between runs,
// which is exactly what a race-hunting harness wants.
package sequence

import "math/rand"

// Shuffled returns every integer in [0, n) exactly once, in uniformly
// random order. Each call reshuffles from scratch; no state survives
// between calls. For n <= 0 it returns an empty slice.
func Shuffled(n int) []int {
	if n <= 0 {
		return []int{}
	}
	return rand.Perm(n)
}
