package pattern

// Union returns a ∪ b: every cell present in either pattern.
func (p Pattern) Union(o Pattern) Pattern {
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		b.InsertCell(c)
	}
	for _, c := range o.CellList() {
		b.InsertCell(c)
	}
	return b.Build()
}

// Difference returns a \ b: cells present in a but not in b.
func (p Pattern) Difference(o Pattern) Pattern {
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		if !o.Contains(c) {
			b.InsertCell(c)
		}
	}
	return b.Build()
}

// Intersection returns a ∩ b: cells present in both a and b.
func (p Pattern) Intersection(o Pattern) Pattern {
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	small, big := p, o
	if o.Size() < p.Size() {
		small, big = o, p
	}
	for _, c := range small.CellList() {
		if big.Contains(c) {
			b.InsertCell(c)
		}
	}
	return b.Build()
}

// SymmetricDifference returns cells present in exactly one of a, b.
func (p Pattern) SymmetricDifference(o Pattern) Pattern {
	return p.Difference(o).Union(o.Difference(p))
}
