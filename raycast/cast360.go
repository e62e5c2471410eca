package raycast

import (
	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
)

// Cast360 casts a ray from "from" toward every cell on the perimeter of
// the axis-aligned square of side 2*radius+1 centred on from, and unions
// every successful prefix. The result is a subset of domain; when from
// lies in domain it contains from and is Moore-connected, otherwise it is
// empty.
func Cast360(from cell.Cell, domain pattern.Pattern, radius int) (pattern.Pattern, error) {
	if radius <= 0 {
		return pattern.Pattern{}, ErrInvalidArgument
	}

	b := pattern.NewBuilder()
	for _, target := range perimeter(from, radius) {
		ray := Cast(from, target, domain)
		for _, c := range ray.CellList() {
			b.InsertCell(c)
		}
	}
	return b.Build(), nil
}

// perimeter returns every cell on the boundary of the axis-aligned square
// of side 2*radius+1 centred on c, without duplicates.
func perimeter(c cell.Cell, radius int) []cell.Cell {
	var out []cell.Cell
	top, bottom := c.Y-radius, c.Y+radius
	left, right := c.X-radius, c.X+radius

	for x := left; x <= right; x++ {
		out = append(out, cell.Cell{X: x, Y: top})
		if bottom != top {
			out = append(out, cell.Cell{X: x, Y: bottom})
		}
	}
	for y := top + 1; y <= bottom-1; y++ {
		out = append(out, cell.Cell{X: left, Y: y})
		if right != left {
			out = append(out, cell.Cell{X: right, Y: y})
		}
	}
	return out
}
