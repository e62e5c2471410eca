package primitives

import (
	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
)

// QuadBezier discretises a quadratic Bézier curve through control points
// p0, p1, p2 by sampling segments+1 parameter values and rasterising
// consecutive pairs with Line, unioning the result. Complexity:
// O(segments) line segments, each O(max axis delta).
func QuadBezier(p0, p1, p2 cell.Cell, segments int) (pattern.Pattern, error) {
	if segments <= 0 {
		return pattern.Pattern{}, ErrInvalidArgument
	}

	points := make([]cell.Cell, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points[i] = quadPoint(p0, p1, p2, t)
	}

	result := pattern.New()
	for i := 0; i < len(points)-1; i++ {
		result = result.Union(Line(points[i], points[i+1]))
	}
	return result, nil
}

func quadPoint(p0, p1, p2 cell.Cell, t float64) cell.Cell {
	u := 1 - t
	x := u*u*float64(p0.X) + 2*u*t*float64(p1.X) + t*t*float64(p2.X)
	y := u*u*float64(p0.Y) + 2*u*t*float64(p1.Y) + t*t*float64(p2.Y)
	return cell.Cell{X: roundNearest(x), Y: roundNearest(y)}
}

func roundNearest(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
