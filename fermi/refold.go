package fermi

import (
	"math"

	"github.com/katalvlaran/kspace/lattice"
)

// refoldTolerance keeps points on a zone face from bouncing between images.
const refoldTolerance = 1e-12

// Refold maps k into the first Brillouin zone spanned by the reciprocal
// vectors b (see lattice.Reciprocal): while some G = n₁b₁ + n₂b₂ with
// n ∈ {−1,0,1}² brings k closer to the origin, k ← k − G.
//
// Every shift strictly shortens k and the reciprocal lattice is discrete, so
// the loop terminates. E(k) is periodic under G, so a refolded Fermi-surface
// point keeps its residual.
func Refold(k Point, b []lattice.Vec) Point {
	if len(b) != 2 {
		return k
	}

	for {
		best := norm2(k)
		var next Point
		moved := false
		for n1 := -1; n1 <= 1; n1++ {
			for n2 := -1; n2 <= 1; n2++ {
				if n1 == 0 && n2 == 0 {
					continue
				}
				cand := Point{
					k[0] - float64(n1)*b[0][0] - float64(n2)*b[1][0],
					k[1] - float64(n1)*b[0][1] - float64(n2)*b[1][1],
				}
				if d := norm2(cand); d < best-refoldTolerance*math.Max(1, best) {
					best, next, moved = d, cand, true
				}
			}
		}
		if !moved {
			return k
		}
		k = next
	}
}

func norm2(p Point) float64 { return p[0]*p[0] + p[1]*p[1] }
