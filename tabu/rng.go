package tabu

import "math/rand"

// SplitMix64 constants, used to derive independent, reproducible RNG
// streams from a single caller-supplied seed.
const (
	splitMix64Gamma = 0x9e3779b97f4a7c15
	splitMix64Mix1  = 0xbf58476d1ce4e5b9
	splitMix64Mix2  = 0x94d049bb133111eb
)

// deriveSeed mixes a base seed and a stream index into a new seed, so
// multiple independent draws (e.g. one stream per candidate start) remain
// reproducible from one caller-supplied base seed.
func deriveSeed(base uint64, stream int) uint64 {
	z := base + uint64(stream)*splitMix64Gamma
	z = (z ^ (z >> 30)) * splitMix64Mix1
	z = (z ^ (z >> 27)) * splitMix64Mix2
	return z ^ (z >> 31)
}

// deriveRNG returns a *rand.Rand seeded deterministically from base and
// stream.
func deriveRNG(base uint64, stream int) *rand.Rand {
	return rand.New(rand.NewSource(int64(deriveSeed(base, stream))))
}
