package sampling

import (
	"math/rand"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
	"github.com/tessellate-go/forma/randutil"
)

// SampleMitchell places n points from domain, one per round. Each round
// draws k random candidates from the remaining domain cells and keeps the
// one that maximises the minimum distance to the points already chosen
// under measure ("best candidate"). The first point is chosen uniformly.
//
// Returns ErrInvalidArgument if n or k is non-positive, or ErrSampleTooLarge
// if n exceeds domain.Size(). A nil rng falls back to the deterministic
// zero-seed stream.
func SampleMitchell(domain pattern.Pattern, measure cell.Measure, n, k int, rng *rand.Rand) (pattern.Pattern, error) {
	if n <= 0 || k <= 0 {
		return pattern.Pattern{}, ErrInvalidArgument
	}
	if n > domain.Size() {
		return pattern.Pattern{}, ErrSampleTooLarge
	}

	rng = randutil.Or(rng)
	remaining := domain.CellList()
	randutil.ShuffleInPlace(remaining, rng)

	chosen := make([]cell.Cell, 0, n)
	chosen = append(chosen, remaining[0])
	remaining = remaining[1:]

	b := pattern.NewBuilder()
	b.InsertCell(chosen[0])

	for len(chosen) < n && len(remaining) > 0 {
		pool := k
		if pool > len(remaining) {
			pool = len(remaining)
		}
		randutil.ShuffleInPlace(remaining, rng)

		bestIdx := 0
		bestDist := minDistance(remaining[0], chosen, measure)
		for i := 1; i < pool; i++ {
			d := minDistance(remaining[i], chosen, measure)
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}

		chosen = append(chosen, remaining[bestIdx])
		b.InsertCell(remaining[bestIdx])
		remaining[bestIdx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	return b.Build(), nil
}

func minDistance(c cell.Cell, chosen []cell.Cell, measure cell.Measure) float64 {
	best := measure(c, chosen[0])
	for _, other := range chosen[1:] {
		if d := measure(c, other); d < best {
			best = d
		}
	}
	return best
}
