// SPDX-License-Identifier: MIT
// Package: lvbip/generate
//
// rng.go - independent RNG streams for Batch.
//
// math/rand.Rand is NOT goroutine-safe; deriveRNG gives every instance its
// own stream so instances can be generated and solved independently.

package generate

import "math/rand"

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer).
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG consumes one draw of base and returns a stream seeded from it
// and stream. Call during setup, not in hot loops.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), stream)))
}
