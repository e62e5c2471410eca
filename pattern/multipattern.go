package pattern

import "sort"

// MultiPattern is an ordered sequence of Patterns, typically the output
// of a decomposition algorithm (connected components, BSP leaves, voids,
// Voronoi segments). Its only semantic state is element ordering.
type MultiPattern []Pattern

// Size returns the number of member patterns.
func (m MultiPattern) Size() int { return len(m) }

// At returns the i-th member pattern.
func (m MultiPattern) At(i int) Pattern { return m[i] }

// TotalCells returns the sum of every member pattern's cell count.
func (m MultiPattern) TotalCells() int {
	total := 0
	for _, p := range m {
		total += p.Size()
	}
	return total
}

// Union flattens every member pattern into a single Pattern.
func (m MultiPattern) Union() Pattern {
	b := NewBuilder()
	for _, p := range m {
		for _, c := range p.CellList() {
			b.InsertCell(c)
		}
	}
	return b.Build()
}

// Sorted returns a copy of m ordered by (min.Y, min.X, size), the
// deterministic comparison key the design notes specify for comparing
// MultiPattern outputs across implementations/test runs. Patterns with
// an undefined (empty) bbox sort last.
func (m MultiPattern) Sorted() MultiPattern {
	cp := make(MultiPattern, len(m))
	copy(cp, m)
	sort.SliceStable(cp, func(i, j int) bool {
		minI, _, okI := cp[i].BBox()
		minJ, _, okJ := cp[j].BBox()
		if okI != okJ {
			return okI
		}
		if !okI {
			return false
		}
		if minI.Y != minJ.Y {
			return minI.Y < minJ.Y
		}
		if minI.X != minJ.X {
			return minI.X < minJ.X
		}
		return cp[i].Size() < cp[j].Size()
	})
	return cp
}
