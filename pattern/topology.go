package pattern

// Edge returns the outer boundary: cells outside the pattern with at
// least one von-Neumann neighbour inside it.
func (p Pattern) Edge() Pattern {
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	seen := map[int64]struct{}{}
	for _, c := range p.CellList() {
		for _, o := range vonNeumannOffsets {
			n := c.Add(o)
			if p.Contains(n) {
				continue
			}
			if _, dup := seen[n.Hash()]; dup {
				continue
			}
			seen[n.Hash()] = struct{}{}
			b.InsertCell(n)
		}
	}
	return b.Build()
}

// InteriorHull returns the inner boundary: cells in the pattern whose
// von-Neumann neighbour set is not fully contained in the pattern, i.e.
// cells in the pattern adjacent to a cell outside it.
func (p Pattern) InteriorHull() Pattern {
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		for _, o := range vonNeumannOffsets {
			if !p.Contains(c.Add(o)) {
				b.InsertCell(c)
				break
			}
		}
	}
	return b.Build()
}

// Surface is a legacy alias for InteriorHull, preserved for callers that
// used the historical name (see the interior_hull/surface naming note).
func (p Pattern) Surface() Pattern {
	return p.InteriorHull()
}

// Filter returns the sub-pattern of cells satisfying pred.
func (p Pattern) Filter(pred func(x, y int) bool) Pattern {
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		if pred(c.X, c.Y) {
			b.InsertCell(c)
		}
	}
	return b.Build()
}
