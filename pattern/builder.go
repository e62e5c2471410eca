package pattern

import "github.com/tessellate-go/forma/cell"

// Builder accumulates cells before freezing them into an immutable
// Pattern. It exists purely as a construction-time convenience: once
// Build is called the resulting Pattern owns its own storage and the
// Builder may keep being reused for unrelated inserts.
type Builder struct {
	p Pattern
}

// NewBuilder returns an empty Builder with the default display characters.
func NewBuilder() *Builder {
	return &Builder{p: New()}
}

// Insert adds (x, y) to the pattern under construction. Coordinates
// outside the domain bound are silently clamped out (ignored); callers
// needing a hard error should validate with cell.New first.
func (b *Builder) Insert(x, y int) *Builder {
	if x < -cell.MaxCoordinate || x > cell.MaxCoordinate || y < -cell.MaxCoordinate || y > cell.MaxCoordinate {
		return b
	}
	b.p.insert(cell.Cell{X: x, Y: y})
	return b
}

// InsertCell adds c to the pattern under construction.
func (b *Builder) InsertCell(c cell.Cell) *Builder {
	return b.Insert(c.X, c.Y)
}

// WithChars sets the display characters of the pattern under construction.
func (b *Builder) WithChars(on, off rune) *Builder {
	b.p.onChar, b.p.offChar = on, off
	return b
}

// Build freezes the accumulated cells into an immutable Pattern, cloning
// storage so further use of the Builder never aliases the returned value.
func (b *Builder) Build() Pattern {
	result := b.p.clone()
	return result
}
