package decomposition

import (
	"math/rand"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
	"github.com/tessellate-go/forma/randutil"
)

// BSP recursively splits p's bounding box with an axis-aligned cut — the
// longer side is cut (ties broken toward the X axis), at a position
// chosen uniformly in the interior third of that side — until every leaf
// holds at most maxSize cells of p. The returned MultiPattern's members
// are disjoint and their union equals p exactly. A nil rng falls back to
// the deterministic zero-seed stream.
func BSP(p pattern.Pattern, maxSize int, rng *rand.Rand) (pattern.MultiPattern, error) {
	if maxSize <= 0 {
		return nil, ErrInvalidArgument
	}
	min, max, ok := p.BBox()
	if !ok {
		return pattern.MultiPattern{}, nil
	}
	r := randutil.Or(rng)
	return bspRecurse(p, min, max, maxSize, r), nil
}

func bspRecurse(p pattern.Pattern, min, max cell.Cell, maxSize int, rng *rand.Rand) pattern.MultiPattern {
	count := countInBox(p, min, max)
	if count == 0 {
		return nil
	}
	if count <= maxSize {
		return pattern.MultiPattern{extractBox(p, min, max)}
	}

	width := max.X - min.X + 1
	height := max.Y - min.Y + 1

	if width >= height {
		cut := cutPosition(min.X, max.X, rng)
		left := bspRecurse(p, min, cell.Cell{X: cut, Y: max.Y}, maxSize, rng)
		right := bspRecurse(p, cell.Cell{X: cut + 1, Y: min.Y}, max, maxSize, rng)
		return append(left, right...)
	}

	cut := cutPosition(min.Y, max.Y, rng)
	top := bspRecurse(p, min, cell.Cell{X: max.X, Y: cut}, maxSize, rng)
	bottom := bspRecurse(p, cell.Cell{X: min.X, Y: cut + 1}, max, maxSize, rng)
	return append(top, bottom...)
}

// cutPosition picks a cut in [lo, hi-1] (so both halves are non-empty),
// uniformly within the interior third of [lo, hi] when that range allows.
func cutPosition(lo, hi int, rng *rand.Rand) int {
	width := hi - lo + 1
	a := lo + width/3
	b := lo + (2*width)/3
	if b > hi-1 {
		b = hi - 1
	}
	if a > b {
		a = b
	}
	if a < lo {
		a = lo
	}
	if b <= a {
		return a
	}
	return a + rng.Intn(b-a+1)
}

func countInBox(p pattern.Pattern, min, max cell.Cell) int {
	if min.X > max.X || min.Y > max.Y {
		return 0
	}
	n := 0
	for _, c := range p.CellList() {
		if c.X >= min.X && c.X <= max.X && c.Y >= min.Y && c.Y <= max.Y {
			n++
		}
	}
	return n
}

func extractBox(p pattern.Pattern, min, max cell.Cell) pattern.Pattern {
	b := pattern.NewBuilder()
	if min.X > max.X || min.Y > max.Y {
		return b.Build()
	}
	for _, c := range p.CellList() {
		if c.X >= min.X && c.X <= max.X && c.Y >= min.Y && c.Y <= max.Y {
			b.InsertCell(c)
		}
	}
	return b.Build()
}
