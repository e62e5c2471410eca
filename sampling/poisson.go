package sampling

import (
	"math/rand"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
	"github.com/tessellate-go/forma/randutil"
)

// SamplePoisson repeatedly draws a candidate from the remaining domain
// cells, rejecting any candidate within r of an already-chosen cell
// under measure, stopping when the domain is exhausted of acceptable
// candidates. Returns ErrInvalidArgument for r < 0. A nil rng falls back
// to the deterministic zero-seed stream.
func SamplePoisson(domain pattern.Pattern, measure cell.Measure, r float64, rng *rand.Rand) (pattern.Pattern, error) {
	if r < 0 {
		return pattern.Pattern{}, ErrInvalidArgument
	}

	remaining := domain.CellList()
	randutil.ShuffleInPlace(remaining, rng)

	chosen := make([]cell.Cell, 0)
	b := pattern.NewBuilder()

	for _, c := range remaining {
		ok := true
		for _, other := range chosen {
			if measure(c, other) < r {
				ok = false
				break
			}
		}
		if ok {
			chosen = append(chosen, c)
			b.InsertCell(c)
		}
	}
	return b.Build(), nil
}
