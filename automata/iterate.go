package automata

import (
	"math/rand"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
)

// Iterate applies ruleset synchronously over every cell in domain,
// returning the next-generation Pattern plus whether it is a fixed
// point of the current pattern (converged == true iff next equals p).
//
// A cell's next state is alive iff every rule in ruleset agrees: if the
// cell is currently alive, every rule's survival set must contain the
// neighbour count under that rule's neighbourhood; if dead, every rule's
// birth set must contain the count. Neighbours outside the pattern are
// treated as absent.
func Iterate(p, domain pattern.Pattern, ruleset RuleSet) (pattern.Pattern, bool) {
	b := pattern.NewBuilder()
	for c := range domain.Cells() {
		if nextAlive(p, c, ruleset) {
			b.InsertCell(c)
		}
	}
	next := b.Build()
	return next, next.Equal(p)
}

// AsyncIterate enumerates domain in a single shuffled pass (RNG
// dependent) and evaluates the same conjunctive predicate against the
// current pattern for each candidate cell. It returns on the first cell
// whose next state differs, producing a pattern that differs from p by
// exactly one cell and converged == false. If no cell changes across the
// full pass, it returns p unchanged with converged == true.
func AsyncIterate(p, domain pattern.Pattern, ruleset RuleSet, rng *rand.Rand) (pattern.Pattern, bool) {
	for c := range domain.ShuffledCells(rng) {
		want := nextAlive(p, c, ruleset)
		have := p.Contains(c)
		if want == have {
			continue
		}
		if want {
			next, _ := p.Insert(c.X, c.Y)
			return next, false
		}
		return removeCell(p, c), false
	}
	return p, true
}

// nextAlive evaluates the conjunctive B/S predicate for cell c against
// pattern p under every rule in ruleset.
func nextAlive(p pattern.Pattern, c cell.Cell, ruleset RuleSet) bool {
	alive := p.Contains(c)
	for _, r := range ruleset {
		count := 0
		for _, o := range r.N.Offsets() {
			if p.Contains(c.Add(o)) {
				count++
			}
		}
		if alive {
			if _, ok := r.S[count]; !ok {
				return false
			}
		} else {
			if _, ok := r.B[count]; !ok {
				return false
			}
		}
	}
	return true
}

// removeCell returns a copy of p without c.
func removeCell(p pattern.Pattern, c cell.Cell) pattern.Pattern {
	b := pattern.NewBuilder()
	for _, other := range p.CellList() {
		if other != c {
			b.InsertCell(other)
		}
	}
	return b.Build()
}
