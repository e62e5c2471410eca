package voronoi

import (
	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
)

// Voronoi assigns every cell of domain to the seed minimising measure(cell,
// seed), ties broken by seed iteration order (earlier index wins). The
// returned MultiPattern has one segment per seed, indices aligned with
// seeds; every seed cell is guaranteed to belong to its own segment.
func Voronoi(seeds []cell.Cell, domain pattern.Pattern, measure cell.Measure) (pattern.MultiPattern, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	builders := make([]*pattern.Builder, len(seeds))
	for i := range builders {
		builders[i] = pattern.NewBuilder()
	}

	for _, c := range domain.CellList() {
		best := nearestSeed(c, seeds, measure)
		builders[best].InsertCell(c)
	}

	// Guarantee every seed belongs to its own segment, even when a seed
	// itself is not a member of domain.
	for i, s := range seeds {
		builders[i].InsertCell(s)
	}

	out := make(pattern.MultiPattern, len(seeds))
	for i, b := range builders {
		out[i] = b.Build()
	}
	return out, nil
}

func nearestSeed(c cell.Cell, seeds []cell.Cell, measure cell.Measure) int {
	best := 0
	bestDist := measure(c, seeds[0])
	for i := 1; i < len(seeds); i++ {
		if d := measure(c, seeds[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
