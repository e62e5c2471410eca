package decomposition

import (
	"sort"

	"github.com/tessellate-go/forma/neighbourhood"
	"github.com/tessellate-go/forma/pattern"
)

// NeighbourhoodCategories partitions p into up to n.CategoryCount()
// sub-patterns, grouping cells by their categorisation under n (see
// neighbourhood.Categorise). The returned MultiPattern is ordered by
// category index ascending and omits empty categories.
func NeighbourhoodCategories(p pattern.Pattern, n neighbourhood.Neighbourhood) pattern.MultiPattern {
	buckets := make(map[int]*pattern.Builder)
	var order []int

	for _, c := range p.CellList() {
		cat := n.Categorise(p.Contains, c)
		b, ok := buckets[cat]
		if !ok {
			b = pattern.NewBuilder()
			buckets[cat] = b
			order = append(order, cat)
		}
		b.InsertCell(c)
	}

	// order currently follows first-seen order (already (Y,X) stable);
	// re-sort by category index for a deterministic, spec-aligned output.
	sort.Ints(order)

	out := make(pattern.MultiPattern, 0, len(order))
	for _, cat := range order {
		out = append(out, buckets[cat].Build())
	}
	return out
}
