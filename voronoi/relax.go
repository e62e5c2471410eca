package voronoi

import (
	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
)

// Relax performs Lloyd-style relaxation: repeatedly tessellate, then
// replace each seed with the centroid of its segment rounded to the
// nearest domain cell (if the rounded centroid falls outside the
// segment, the segment cell closest to it under measure is used
// instead). Stops when the seed set is unchanged or maxIter is reached;
// maxIter <= 0 means unbounded.
func Relax(seeds []cell.Cell, domain pattern.Pattern, measure cell.Measure, maxIter int) (segments pattern.MultiPattern, newSeeds []cell.Cell, converged bool, err error) {
	if len(seeds) == 0 {
		return nil, nil, false, ErrNoSeeds
	}

	current := append([]cell.Cell(nil), seeds...)

	for iter := 0; maxIter <= 0 || iter < maxIter; iter++ {
		segs, err := Voronoi(current, domain, measure)
		if err != nil {
			return nil, nil, false, err
		}

		next := make([]cell.Cell, len(current))
		for i, seg := range segs {
			next[i] = recenter(seg, measure)
		}

		if sameSeeds(current, next) {
			return segs, next, true, nil
		}
		current = next
		segments = segs
	}

	segs, err := Voronoi(current, domain, measure)
	if err != nil {
		return nil, nil, false, err
	}
	return segs, current, false, nil
}

func recenter(seg pattern.Pattern, measure cell.Measure) cell.Cell {
	centroid, err := seg.Centroid()
	if err != nil {
		return cell.Cell{}
	}
	if seg.Contains(centroid) {
		return centroid
	}

	cells := seg.CellList()
	best := cells[0]
	bestDist := measure(centroid, best)
	for _, c := range cells[1:] {
		if d := measure(centroid, c); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func sameSeeds(a, b []cell.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
