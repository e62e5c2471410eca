package raycast

import (
	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
	"github.com/tessellate-go/forma/primitives"
)

// Cast steps along primitives.LinePoints from from toward to, returning
// the line prefix up to and including the first cell, or terminating at
// to, where every cell in the prefix lies in domain. The success
// contract used by callers: the returned pattern contains from; an
// empty result (or one missing from) indicates from itself was outside
// domain.
func Cast(from, to cell.Cell, domain pattern.Pattern) pattern.Pattern {
	b := pattern.NewBuilder()

	for _, c := range primitives.LinePoints(from, to) {
		if !domain.Contains(c) {
			break
		}
		b.InsertCell(c)
		if c == to {
			break
		}
	}
	return b.Build()
}
