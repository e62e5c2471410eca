package decomposition

import (
	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/neighbourhood"
	"github.com/tessellate-go/forma/pattern"
)

// EnclosedVoids complements p within its bounding box plus a one-cell
// halo, takes connected components of the complement under n, and
// discards any component touching the halo. The remainder are the
// enclosed-void sub-patterns, fully surrounded by p.
func EnclosedVoids(p pattern.Pattern, n neighbourhood.Neighbourhood) pattern.MultiPattern {
	min, max, ok := p.BBox()
	if !ok {
		return pattern.MultiPattern{}
	}

	haloMin := cell.Cell{X: min.X - 1, Y: min.Y - 1}
	haloMax := cell.Cell{X: max.X + 1, Y: max.Y + 1}

	complement := pattern.NewBuilder()
	for x := haloMin.X; x <= haloMax.X; x++ {
		for y := haloMin.Y; y <= haloMax.Y; y++ {
			if !p.HasCell(x, y) {
				complement.Insert(x, y)
			}
		}
	}
	comp := complement.Build()

	components := ConnectedComponents(comp, n)

	var out pattern.MultiPattern
	for _, c := range components {
		if touchesHalo(c, haloMin, haloMax) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func touchesHalo(p pattern.Pattern, haloMin, haloMax cell.Cell) bool {
	for _, c := range p.CellList() {
		if c.X == haloMin.X || c.X == haloMax.X || c.Y == haloMin.Y || c.Y == haloMax.Y {
			return true
		}
	}
	return false
}
