package decomposition

import (
	"github.com/tessellate-go/forma/neighbourhood"
	"github.com/tessellate-go/forma/pattern"
)

// ConnectedComponents repeatedly flood-fills an unvisited cell until
// every cell of p is covered, emitting one Pattern per component into a
// MultiPattern. Ordering follows p.CellList()'s deterministic (Y, X)
// order, grounded on the same BFS-worklist shape as a grid-graph island
// scan, generalised from a per-value map to an ordered MultiPattern.
func ConnectedComponents(p pattern.Pattern, n neighbourhood.Neighbourhood) pattern.MultiPattern {
	visited := map[int64]struct{}{}
	var out pattern.MultiPattern

	for _, c := range p.CellList() {
		if _, seen := visited[c.Hash()]; seen {
			continue
		}
		comp := FloodFill(p, c, n)
		for _, cc := range comp.CellList() {
			visited[cc.Hash()] = struct{}{}
		}
		out = append(out, comp)
	}
	return out
}
