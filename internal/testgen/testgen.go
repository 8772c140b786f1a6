// Package testgen produces deterministic random inputs for property tests
// and benchmarks of the tally counters.
//
// Determinism: same seed ⇒ identical inputs across runs and platforms.
// math/rand.Rand is not goroutine-safe; do not share one across goroutines.
package testgen

import (
	"math/rand"

	"github.com/katalvlaran/tally/point"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Lowercase returns a string of n letters drawn from the first alphabet
// letters of 'a'..'z'. A small alphabet makes anagram collisions frequent.
func Lowercase(rng *rand.Rand, n, alphabet int) string {
	if alphabet < 1 || alphabet > 26 {
		alphabet = 26
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('a' + rng.Intn(alphabet))
	}

	return string(buf)
}

// Points returns up to n distinct points inside the [0,span)×[0,span) box.
// Fewer than n points are returned when the box is too small.
func Points(rng *rand.Rand, n, span int) []point.Point {
	if span < 1 {
		span = 1
	}
	if limit := span * span; n > limit {
		n = limit
	}
	seen := make(map[point.Point]struct{}, n)
	out := make([]point.Point, 0, n)
	for len(out) < n {
		p := point.Point{X: int64(rng.Intn(span)), Y: int64(rng.Intn(span))}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

// Powers returns n values of the form base·r^e with e drawn from [0,maxExp],
// mixed with a few arbitrary values so that progressions are both present
// and interrupted.
func Powers(rng *rand.Rand, n int, r int64, maxExp int) []int64 {
	out := make([]int64, n)
	for i := range out {
		if rng.Intn(5) == 0 {
			out[i] = int64(rng.Intn(50))

			continue
		}
		v := int64(1)
		e := rng.Intn(maxExp + 1)
		for k := 0; k < e; k++ {
			v *= r
		}
		out[i] = v
	}

	return out
}

// Shuffle permutes pts in place with a Fisher–Yates shuffle.
func Shuffle(rng *rand.Rand, pts []point.Point) {
	for i := len(pts) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}
