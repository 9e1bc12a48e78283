// RNG streams for the sampler.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every point owns its stream.
package fermi

import "math/rand"

// defaultRNGSeed is the root used when callers pass Seed == 0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a root seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(root int64, stream uint64) int64 {
	var x uint64
	x = uint64(root) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the deterministic stream of point idx under seed.
// Policy: seed == 0 ⇒ defaultRNGSeed. The stream depends only on (seed, idx),
// never on the order in which points are searched.
//
// Complexity: O(1).
func streamRNG(seed int64, idx int) *rand.Rand {
	root := seed
	if root == 0 {
		root = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(root, uint64(idx))))
}

// uniformIn draws a point uniformly from the box [lo, hi).
func uniformIn(r *rand.Rand, lo, hi Point) Point {
	var p Point
	for i := range p {
		p[i] = lo[i] + r.Float64()*(hi[i]-lo[i])
	}

	return p
}
