package util

import "math/rand"

// NewRand returns a seeded source; seed 0 is remapped so it never means "unseeded".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// SubSeed derives the seed for job i of a batch. It depends on the job index
// only, so results do not change with the worker that picks the job up.
func SubSeed(seed int64, i int) int64 {
	return seed + int64(i)*7919
}
