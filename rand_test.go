package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRand_SameSeedSameRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(13)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_DifferentSeedsDifferentRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(14)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.NotEqual(t, v1, v2)
}

func TestRand_CopyMakesIdenticalGenerators(t *testing.T) {
	r1 := NewRand(13)
	r1.RInt(0, 1000000)

	r2 := r1

	v1 := [10]int64{}
	v2 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
		v2[i] = r2.RInt(0, 1000000)
	}
	assert.Equal(t, v1, v2)
}

func TestRand_RIntCoversWholeRange(t *testing.T) {
	r := NewRand(0)
	seen := map[int64]bool{}
	for range 100000 {
		v := r.RInt(0, 359)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.LessOrEqual(t, v, int64(359))
		seen[v] = true
	}
	assert.Len(t, seen, 360)
}

func TestRand_RIntIsUniformOverHugeRanges(t *testing.T) {
	// With n = 6e18 possible values, taking Uint64() % n would make the
	// values below 2^64 - 3n come up 4 times out of 3 as often as the rest,
	// and about 51.2% of the results would fall in the lower half.
	const n = 6_000_000_000_000_000_000
	r := NewRand(13)
	lower := 0
	const samples = 200000
	for range samples {
		if r.RInt(0, n-1) < n/2 {
			lower++
		}
	}
	assert.InDelta(t, 0.5, float64(lower)/samples, 0.005)
}
