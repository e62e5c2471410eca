package decomposition

import (
	"sort"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/neighbourhood"
	"github.com/tessellate-go/forma/pattern"
	"github.com/tessellate-go/forma/primitives"
)

// ConvexHullPoints returns the vertices of the integer convex hull of p's
// cells via Andrew's monotone-chain algorithm on sorted cells. Returns
// ErrEmptyPattern for the empty pattern.
func ConvexHullPoints(p pattern.Pattern) ([]cell.Cell, error) {
	if p.Size() == 0 {
		return nil, ErrEmptyPattern
	}
	pts := p.CellList() // already sorted by (Y, X)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	if len(pts) == 1 {
		return pts, nil
	}

	cross := func(o, a, b cell.Cell) int {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	lower := make([]cell.Cell, 0, len(pts))
	for _, pt := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], pt) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, pt)
	}

	upper := make([]cell.Cell, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		pt := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], pt) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, pt)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull, nil
}

// ConvexHull rasterises each consecutive hull-vertex pair with
// primitives.Line, then flood-fills the enclosed region, returning the
// filled hull (boundary plus interior).
func ConvexHull(p pattern.Pattern) (pattern.Pattern, error) {
	verts, err := ConvexHullPoints(p)
	if err != nil {
		return pattern.Pattern{}, err
	}
	if len(verts) < 3 {
		b := pattern.NewBuilder()
		for _, v := range verts {
			b.InsertCell(v)
		}
		return b.Build(), nil
	}

	boundary := pattern.New()
	for i := range verts {
		a := verts[i]
		c := verts[(i+1)%len(verts)]
		boundary = boundary.Union(primitives.Line(a, c))
	}

	min, max, _ := boundary.BBox()
	centroid, _ := boundary.Centroid()
	seed := findInteriorSeed(boundary, min, max, centroid)
	if seed == nil {
		return boundary, nil
	}
	interior := FloodFill(complementWithinBox(boundary, min, max), *seed, neighbourhood.VonNeumann())
	return boundary.Union(interior), nil
}

// complementWithinBox returns every cell in [min,max] not in boundary.
func complementWithinBox(boundary pattern.Pattern, min, max cell.Cell) pattern.Pattern {
	b := pattern.NewBuilder()
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			if !boundary.HasCell(x, y) {
				b.Insert(x, y)
			}
		}
	}
	return b.Build()
}

// findInteriorSeed locates a cell inside the boundary's box that is not
// part of the boundary itself, starting from the centroid and spiraling
// outward if necessary.
func findInteriorSeed(boundary pattern.Pattern, min, max, centroid cell.Cell) *cell.Cell {
	if !boundary.HasCell(centroid.X, centroid.Y) {
		c := centroid
		return &c
	}
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			if !boundary.HasCell(x, y) {
				c := cell.Cell{X: x, Y: y}
				return &c
			}
		}
	}
	return nil
}
