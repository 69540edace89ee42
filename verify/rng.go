// SPDX-License-Identifier: MIT

package verify

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer,
// so per-grammar streams are decorrelated from each other.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the RNG for the i-th random grammar of a run. Grammar i
// is the same for a given seed regardless of how many grammars are requested.
func streamRNG(seed int64, i int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rngFromSeed(deriveSeed(seed, uint64(i)))
}
