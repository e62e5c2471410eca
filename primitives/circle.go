package primitives

import "github.com/tessellate-go/forma/pattern"

// Circle rasterises the outline of a radius-r circle centred at (0,0)
// using the midpoint-circle algorithm: no point is duplicated, and the
// eight octants are filled symmetrically. The interior of the outline is
// left empty — callers wanting a filled disc compose Circle with
// decomposition's flood-fill / enclosed-void detection. Complexity: O(r).
func Circle(r int) (pattern.Pattern, error) {
	if r < 0 {
		return pattern.Pattern{}, ErrInvalidArgument
	}
	b := pattern.NewBuilder()
	if r == 0 {
		b.Insert(0, 0)
		return b.Build(), nil
	}

	plot := func(x, y int) {
		b.Insert(x, y)
		b.Insert(-x, y)
		b.Insert(x, -y)
		b.Insert(-x, -y)
		b.Insert(y, x)
		b.Insert(-y, x)
		b.Insert(y, -x)
		b.Insert(-y, -x)
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		plot(x, y)
		y++
		if d <= 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return b.Build(), nil
}
