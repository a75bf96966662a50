package tests

import "math/rand/v2"

// Randomizer bundles the random draws tests want to pin down.
type Randomizer struct {
	Pick func(n int) int
}

func NewRandomizer(seed uint64) Randomizer {
	random := rand.New(rand.NewPCG(seed, seed))

	return Randomizer{Pick: random.IntN}
}

// Fixed returns a picker that always selects index i.
func Fixed(i int) func(int) int {
	return func(int) int { return i }
}
