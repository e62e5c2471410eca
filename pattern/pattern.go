package pattern

import (
	"sort"

	"github.com/tessellate-go/forma/cell"
)

// Pattern is an immutable finite set of lattice cells. The zero value is
// not meaningful; use New, FromMatrix, or a Builder.
type Pattern struct {
	cells   map[int64]cell.Cell
	hasBBox bool
	min, max cell.Cell
	onChar, offChar rune
}

// New returns the empty pattern.
func New() Pattern {
	return Pattern{
		cells:   map[int64]cell.Cell{},
		onChar:  '#',
		offChar: '.',
	}
}

// FromMatrix builds a Pattern from rows where rows[y][x] != 0 means the
// cell (x,y) is present. Rows need not be rectangular; short rows are
// treated as all-absent past their length.
func FromMatrix(rows [][]int) Pattern {
	b := NewBuilder()
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				b.Insert(x, y)
			}
		}
	}
	return b.Build()
}

// Size returns the number of cells in the pattern.
func (p Pattern) Size() int { return len(p.cells) }

// HasCell reports whether (x, y) belongs to the pattern.
func (p Pattern) HasCell(x, y int) bool {
	_, ok := p.cells[cell.Cell{X: x, Y: y}.Hash()]
	return ok
}

// Contains reports whether c belongs to the pattern.
func (p Pattern) Contains(c cell.Cell) bool {
	_, ok := p.cells[c.Hash()]
	return ok
}

// BBox returns the pattern's bounding box. ok is false for the empty
// pattern, whose bbox is undefined (the sentinel case from the data model).
func (p Pattern) BBox() (min, max cell.Cell, ok bool) {
	return p.min, p.max, p.hasBBox
}

// OnChar returns the display character for present cells, consumed only
// by external pretty-printers.
func (p Pattern) OnChar() rune { return p.onChar }

// OffChar returns the display character for absent cells, consumed only
// by external pretty-printers.
func (p Pattern) OffChar() rune { return p.offChar }

// WithChars returns a copy of p with the given display characters set.
func (p Pattern) WithChars(on, off rune) Pattern {
	cp := p.clone()
	cp.onChar, cp.offChar = on, off
	return cp
}

// Insert returns a new Pattern with (x, y) added. Cells already present
// are a no-op (still returns an equivalent Pattern).
func (p Pattern) Insert(x, y int) (Pattern, error) {
	if x < -cell.MaxCoordinate || x > cell.MaxCoordinate || y < -cell.MaxCoordinate || y > cell.MaxCoordinate {
		return Pattern{}, ErrOutOfDomain
	}
	cp := p.clone()
	cp.insert(cell.Cell{X: x, Y: y})
	return cp, nil
}

// CellList returns a snapshot of every cell in the pattern, sorted by
// (Y, X) for a deterministic, repeatable order independent of Go's
// randomised map iteration.
func (p Pattern) CellList() []cell.Cell {
	out := make([]cell.Cell, 0, len(p.cells))
	for _, c := range p.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Equal reports whether p and o contain exactly the same cells. The
// cached bounding box is derived, not compared directly.
func (p Pattern) Equal(o Pattern) bool {
	if p.Size() != o.Size() {
		return false
	}
	for h := range p.cells {
		if _, ok := o.cells[h]; !ok {
			return false
		}
	}
	return true
}

// clone returns a deep copy of p's cell map, preserving cached bbox/chars.
func (p Pattern) clone() Pattern {
	cp := Pattern{
		cells:   make(map[int64]cell.Cell, len(p.cells)),
		hasBBox: p.hasBBox,
		min:     p.min,
		max:     p.max,
		onChar:  p.onChar,
		offChar: p.offChar,
	}
	for h, c := range p.cells {
		cp.cells[h] = c
	}
	return cp
}

// insert mutates the receiver in place; only used internally on a
// freshly cloned or builder-owned Pattern that has not yet been observed
// by any caller.
func (p *Pattern) insert(c cell.Cell) {
	h := c.Hash()
	if _, exists := p.cells[h]; exists {
		return
	}
	p.cells[h] = c
	if !p.hasBBox {
		p.min, p.max = c, c
		p.hasBBox = true
		return
	}
	if c.X < p.min.X {
		p.min.X = c.X
	}
	if c.Y < p.min.Y {
		p.min.Y = c.Y
	}
	if c.X > p.max.X {
		p.max.X = c.X
	}
	if c.Y > p.max.Y {
		p.max.Y = c.Y
	}
}
