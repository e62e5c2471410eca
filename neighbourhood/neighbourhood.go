// Package neighbourhood provides ordered sets of lattice offsets plus a
// categorisation table partitioning every subset of an offset set into a
// stable index in [1, 2^n].
//
// Built-ins: VonNeumann (4 orthogonal), Moore (8), Diagonal (4 corners),
// Diagonal2 (4 knight-short corners at ±2) and Knight (8 L-moves).
package neighbourhood

import "github.com/tessellate-go/forma/cell"

// Neighbourhood is an ordered, fixed sequence of offset cells plus a
// precomputed category table enumerating every subset of those offsets.
// It is constant after construction.
type Neighbourhood struct {
	name       string
	offsets    []cell.Cell
	categories [][]bool // categories[i] is a bitset over offsets, indexed 0..2^n-1
}

// New builds a Neighbourhood from an explicit, ordered offset list.
func New(name string, offsets []cell.Cell) Neighbourhood {
	n := len(offsets)
	cp := make([]cell.Cell, n)
	copy(cp, offsets)

	total := 1 << n
	cats := make([][]bool, total)
	for i := 0; i < total; i++ {
		bits := make([]bool, n)
		for b := 0; b < n; b++ {
			bits[b] = i&(1<<b) != 0
		}
		cats[i] = bits
	}

	return Neighbourhood{name: name, offsets: cp, categories: cats}
}

// Name returns the neighbourhood's display name ("von_neumann", "moore", ...).
func (n Neighbourhood) Name() string { return n.name }

// Offsets returns the ordered offset list. The returned slice is owned by
// the caller; mutating it does not affect n.
func (n Neighbourhood) Offsets() []cell.Cell {
	cp := make([]cell.Cell, len(n.offsets))
	copy(cp, n.offsets)
	return cp
}

// Size returns the number of offsets, n.
func (n Neighbourhood) Size() int { return len(n.offsets) }

// Categorise returns the category index in [1, 2^n] of the subset of
// offsets present around c, where present(o) reports whether c+o belongs
// to the membership set being categorised. Category 2^n is "no offset
// present"; category 1 is "all offsets present".
func (n Neighbourhood) Categorise(present func(c cell.Cell) bool, c cell.Cell) int {
	bits := 0
	for i, o := range n.offsets {
		if present(c.Add(o)) {
			bits |= 1 << i
		}
	}
	// Category 2^n ("no offset present") must map to bits==0, and category 1
	// ("all offsets present") to bits==2^n-1: invert the natural ordering.
	return (1<<len(n.offsets) - 1 - bits) + 1
}

// CategoryCount returns 2^n, the number of distinct categories.
func (n Neighbourhood) CategoryCount() int { return len(n.categories) }

// CategoryLabels returns 2^n display strings, one per category index-1,
// for external pretty-printers. Non von-Neumann neighbourhoods get a
// generic bitmask label; von Neumann gets the corridor-art box-drawing
// glyphs so categorised printing reproduces corridor art (spec §4.B).
func (n Neighbourhood) CategoryLabels() []string {
	if n.name == "von_neumann" {
		return vonNeumannGlyphs()
	}
	labels := make([]string, len(n.categories))
	for i := range labels {
		// Category i+1 is the subset whose bitset is 2^n-1-i (see Categorise).
		bits := n.categories[len(n.categories)-1-i]
		s := make([]byte, len(bits))
		for b, present := range bits {
			if present {
				s[b] = '1'
			} else {
				s[b] = '0'
			}
		}
		labels[i] = string(s)
	}
	return labels
}

// VonNeumann returns the 4-orthogonal-neighbour neighbourhood: N, E, S, W.
func VonNeumann() Neighbourhood {
	return New("von_neumann", []cell.Cell{
		{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
	})
}

// Moore returns the 8-neighbour neighbourhood (orthogonal + diagonal).
func Moore() Neighbourhood {
	return New("moore", []cell.Cell{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	})
}

// Diagonal returns the 4 corner offsets only.
func Diagonal() Neighbourhood {
	return New("diagonal", []cell.Cell{
		{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1},
	})
}

// Diagonal2 returns the 4 knight-short corners at distance 2 diagonally.
func Diagonal2() Neighbourhood {
	return New("diagonal_2", []cell.Cell{
		{X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}, {X: -2, Y: -2},
	})
}

// Knight returns the 8 knight's-move offsets.
func Knight() Neighbourhood {
	return New("knight", []cell.Cell{
		{X: 1, Y: -2}, {X: 2, Y: -1}, {X: 2, Y: 1}, {X: 1, Y: 2},
		{X: -1, Y: 2}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: -1, Y: -2},
	})
}

// vonNeumannGlyphs returns the 16 box-drawing labels for von Neumann's
// 2^4 categories, ordered N,E,S,W bit order matching VonNeumann's offsets.
func vonNeumannGlyphs() []string {
	// index by bitset (N=1,E=2,S=4,W=8) of offsets actually present.
	glyphs := map[int]string{
		0b0000: " ",
		0b0001: "╵",
		0b0010: "╶",
		0b0011: "└",
		0b0100: "╷",
		0b0101: "│",
		0b0110: "┌",
		0b0111: "├",
		0b1000: "╴",
		0b1001: "┘",
		0b1010: "─",
		0b1011: "┴",
		0b1100: "┐",
		0b1101: "┤",
		0b1110: "┬",
		0b1111: "┼",
	}
	n := 4
	total := 1 << n
	labels := make([]string, total)
	for catIdx := 1; catIdx <= total; catIdx++ {
		bits := (total - 1) - (catIdx - 1)
		labels[catIdx-1] = glyphs[bits]
	}
	return labels
}
