package pattern

import (
	"github.com/tessellate-go/forma/cell"
)

// Translate returns a new pattern with every cell shifted by (dx, dy).
func (p Pattern) Translate(dx, dy int) Pattern {
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		b.Insert(c.X+dx, c.Y+dy)
	}
	return b.Build()
}

// HReflect mirrors the pattern across the vertical axis running through
// the centre of its bounding box.
func (p Pattern) HReflect() Pattern {
	min, max, ok := p.BBox()
	if !ok {
		return p
	}
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		b.Insert(min.X+max.X-c.X, c.Y)
	}
	return b.Build()
}

// VReflect mirrors the pattern across the horizontal axis running through
// the centre of its bounding box.
func (p Pattern) VReflect() Pattern {
	min, max, ok := p.BBox()
	if !ok {
		return p
	}
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		b.Insert(c.X, min.Y+max.Y-c.Y)
	}
	return b.Build()
}

// Rotate returns the pattern rotated k quarter-turns counter-clockwise
// about the origin. Negative k rotates clockwise; k is taken mod 4.
func (p Pattern) Rotate(k int) Pattern {
	k = ((k % 4) + 4) % 4
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		x, y := c.X, c.Y
		for i := 0; i < k; i++ {
			x, y = -y, x
		}
		b.Insert(x, y)
	}
	return b.Build()
}

// Enlarge returns a new pattern where every cell (x, y) becomes an f×f
// block of cells anchored at (f*x, f*y). Returns ErrInvalidArgument for
// f <= 0.
func (p Pattern) Enlarge(f int) (Pattern, error) {
	if f <= 0 {
		return Pattern{}, ErrInvalidArgument
	}
	b := NewBuilder().WithChars(p.onChar, p.offChar)
	for _, c := range p.CellList() {
		for dx := 0; dx < f; dx++ {
			for dy := 0; dy < f; dy++ {
				b.Insert(f*c.X+dx, f*c.Y+dy)
			}
		}
	}
	return b.Build(), nil
}

// vonNeumannOffsets are the 4 orthogonal unit offsets used by Edge and
// InteriorHull, kept local so that pattern does not depend on the
// neighbourhood package.
var vonNeumannOffsets = [4]cell.Cell{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
}
