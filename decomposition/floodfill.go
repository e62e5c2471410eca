package decomposition

import (
	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/neighbourhood"
	"github.com/tessellate-go/forma/pattern"
)

// FloodFill returns the maximal connected sub-pattern of p reachable from
// seed under neighbourhood n, using an iterative worklist. seed itself
// must belong to p or the result is empty.
func FloodFill(p pattern.Pattern, seed cell.Cell, n neighbourhood.Neighbourhood) pattern.Pattern {
	b := pattern.NewBuilder()
	if !p.Contains(seed) {
		return b.Build()
	}

	visited := map[int64]struct{}{seed.Hash(): {}}
	queue := []cell.Cell{seed}
	b.InsertCell(seed)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, o := range n.Offsets() {
			nb := c.Add(o)
			h := nb.Hash()
			if _, seen := visited[h]; seen {
				continue
			}
			if !p.Contains(nb) {
				continue
			}
			visited[h] = struct{}{}
			b.InsertCell(nb)
			queue = append(queue, nb)
		}
	}
	return b.Build()
}
