package pattern

import (
	"iter"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/randutil"
)

// Cells returns a stable iterator over every cell in the pattern, in
// (Y, X) order.
func (p Pattern) Cells() iter.Seq[cell.Cell] {
	list := p.CellList()
	return func(yield func(cell.Cell) bool) {
		for _, c := range list {
			if !yield(c) {
				return
			}
		}
	}
}

// ShuffledCells returns an iterator over every cell in the pattern in an
// RNG-dependent shuffled order. A nil rng falls back to the deterministic
// zero-seed stream (see randutil).
func (p Pattern) ShuffledCells(rng *rand.Rand) iter.Seq[cell.Cell] {
	list := p.CellList()
	randutil.ShuffleInPlace(list, rng)
	return func(yield func(cell.Cell) bool) {
		for _, c := range list {
			if !yield(c) {
				return
			}
		}
	}
}

// RCell returns a uniformly random cell from the pattern. A nil rng falls
// back to the deterministic zero-seed stream.
func (p Pattern) RCell(rng *rand.Rand) (cell.Cell, error) {
	if p.Size() == 0 {
		return cell.Cell{}, ErrEmptyPattern
	}
	list := p.CellList()
	r := randutil.Or(rng)
	return list[r.Intn(len(list))], nil
}

// Medoid returns the cell in the pattern minimising the summed distance,
// under measure, to every other cell in the pattern.
func (p Pattern) Medoid(measure cell.Measure) (cell.Cell, error) {
	if p.Size() == 0 {
		return cell.Cell{}, ErrEmptyPattern
	}
	list := p.CellList()
	best := list[0]
	bestSum := medoidSum(list, best, measure)
	for _, candidate := range list[1:] {
		sum := medoidSum(list, candidate, measure)
		if sum < bestSum {
			bestSum, best = sum, candidate
		}
	}
	return best, nil
}

func medoidSum(list []cell.Cell, candidate cell.Cell, measure cell.Measure) float64 {
	dists := make([]float64, len(list))
	for i, other := range list {
		dists[i] = measure(candidate, other)
	}
	return floats.Sum(dists)
}

// Centroid returns the arithmetic mean of the pattern's cells, rounded to
// the nearest lattice point. The result is not guaranteed to belong to
// the pattern.
func (p Pattern) Centroid() (cell.Cell, error) {
	if p.Size() == 0 {
		return cell.Cell{}, ErrEmptyPattern
	}
	list := p.CellList()
	xs := make([]float64, len(list))
	ys := make([]float64, len(list))
	for i, c := range list {
		xs[i] = float64(c.X)
		ys[i] = float64(c.Y)
	}
	n := float64(len(list))
	meanX := floats.Sum(xs) / n
	meanY := floats.Sum(ys) / n
	return cell.Cell{X: roundToInt(meanX), Y: roundToInt(meanY)}, nil
}

func roundToInt(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
