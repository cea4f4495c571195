package main

import "math/rand/v2"

// Rand is a seeded random number generator that is safe to copy: a copy
// continues the exact same sequence as the original, independently of it.
// This is what makes spawns reproducible from a seed.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed))
	return
}

// RInt returns a random integer in [minVal, maxVal], both ends included,
// every value equally likely.
func (r *Rand) RInt(minVal int64, maxVal int64) int64 {
	return minVal + rand.New(&r.pcg).Int64N(maxVal-minVal+1)
}
