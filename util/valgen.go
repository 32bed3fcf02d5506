// Package valgen generates register inputs for tests and samples.
package valgen

import "math/rand"

// Gen yields one non-negative value per call.
type Gen func() int

// MakeConstGen always yields constant.
func MakeConstGen(constant int) Gen {
	return func() int {
		return constant
	}
}

// MakeIncreasingGen yields start+1, start+2, ...
func MakeIncreasingGen(start int) Gen {
	current := start
	return func() int {
		current++
		return current
	}
}

// MakeRandomGen yields values in [lo, hi] drawn from rng.
func MakeRandomGen(rng *rand.Rand, lo, hi int) Gen {
	return func() int {
		return lo + rng.Intn(hi-lo+1)
	}
}

// Take draws n values from gen.
func Take(gen Gen, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = gen()
	}

	return out
}
