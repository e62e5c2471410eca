// Package cell defines the Cell type — an integer point on the 2D
// lattice — and the distance measures the rest of forma is built on.
//
// Cells are pure values: equality is structural, and nothing in this
// package owns or mutates external state.
package cell

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// MaxCoordinate bounds every coordinate so that (x, y) packs injectively
// into the int64 hash used by pattern's membership set.
const MaxCoordinate = 1 << 30

// ErrOutOfDomain indicates a coordinate lies outside [-MaxCoordinate, MaxCoordinate].
var ErrOutOfDomain = errors.New("cell: coordinate out of domain")

// Cell is an integer point (X, Y) on the unbounded lattice.
type Cell struct {
	X, Y int
}

// New constructs a Cell, rejecting coordinates outside the domain bound.
func New(x, y int) (Cell, error) {
	if x < -MaxCoordinate || x > MaxCoordinate || y < -MaxCoordinate || y > MaxCoordinate {
		return Cell{}, ErrOutOfDomain
	}
	return Cell{X: x, Y: y}, nil
}

// Add returns a+b, componentwise.
func (a Cell) Add(b Cell) Cell { return Cell{X: a.X + b.X, Y: a.Y + b.Y} }

// Sub returns a-b, componentwise.
func (a Cell) Sub(b Cell) Cell { return Cell{X: a.X - b.X, Y: a.Y - b.Y} }

// Hash packs the cell into a collision-free int64 key, valid for any cell
// within [-MaxCoordinate, MaxCoordinate]^2.
func (a Cell) Hash() int64 {
	const c = int64(MaxCoordinate)
	return (int64(a.X)+c)*(2*c+1) + (int64(a.Y) + c)
}

// Manhattan is the L1 distance |dx| + |dy|.
func Manhattan(a, b Cell) int {
	return AbsInt(a.X-b.X) + AbsInt(a.Y-b.Y)
}

// Chebyshev is the L∞ distance max(|dx|, |dy|).
func Chebyshev(a, b Cell) int {
	dx, dy := AbsInt(a.X-b.X), AbsInt(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Euclidean2 is the squared L2 distance, integer-exact.
func Euclidean2(a, b Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Euclidean is the L2 distance as a float64.
func Euclidean(a, b Cell) float64 {
	return math.Sqrt(float64(Euclidean2(a, b)))
}

// Measure is a distance function between two cells, modelled as a function
// value so callers can inject Manhattan/Chebyshev/Euclidean or a custom
// closure interchangeably (see design note on dynamic dispatch).
type Measure func(a, b Cell) float64

// ManhattanMeasure adapts Manhattan to the Measure signature.
func ManhattanMeasure(a, b Cell) float64 { return float64(Manhattan(a, b)) }

// ChebyshevMeasure adapts Chebyshev to the Measure signature.
func ChebyshevMeasure(a, b Cell) float64 { return float64(Chebyshev(a, b)) }

// EuclideanMeasure adapts Euclidean to the Measure signature.
func EuclideanMeasure(a, b Cell) float64 { return Euclidean(a, b) }

// AbsInt returns the absolute value of v for any signed integer type. Shared
// by cell's own distance measures and by primitives' Bresenham stepper.
func AbsInt[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
