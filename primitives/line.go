package primitives

import (
	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
)

// Line rasterises a Bresenham line between a and b, inclusive of both
// endpoints. The result is flood-fill-contiguous under the Moore
// neighbourhood. Complexity: O(max(|dx|,|dy|)).
func Line(a, b cell.Cell) pattern.Pattern {
	bld := pattern.NewBuilder()
	for _, c := range LinePoints(a, b) {
		bld.InsertCell(c)
	}
	return bld.Build()
}

// LinePoints returns every lattice point on the Bresenham line from a to
// b, in walk order, inclusive of both endpoints. Exported so callers that
// need the walk order itself (e.g. a ray that stops partway along the
// line) can step the same sequence Line rasterises, without
// reimplementing the stepper.
func LinePoints(a, b cell.Cell) []cell.Cell {
	var out []cell.Cell

	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	dx := cell.AbsInt(x1 - x0)
	dy := -cell.AbsInt(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		out = append(out, cell.Cell{X: x, Y: y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return out
}
