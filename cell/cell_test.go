package cell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessellate-go/forma/cell"
)

func TestDistanceMeasures(t *testing.T) {
	a := cell.Cell{X: 0, Y: 0}
	b := cell.Cell{X: 3, Y: 4}

	require.Equal(t, 7, cell.Manhattan(a, b))
	require.Equal(t, 4, cell.Chebyshev(a, b))
	require.Equal(t, 25, cell.Euclidean2(a, b))
	require.InDelta(t, 5.0, cell.Euclidean(a, b), 1e-9)
}

func TestMeasureAdapters(t *testing.T) {
	a := cell.Cell{X: 0, Y: 0}
	b := cell.Cell{X: 3, Y: 4}

	require.Equal(t, float64(cell.Manhattan(a, b)), cell.ManhattanMeasure(a, b))
	require.Equal(t, float64(cell.Chebyshev(a, b)), cell.ChebyshevMeasure(a, b))
	require.Equal(t, cell.Euclidean(a, b), cell.EuclideanMeasure(a, b))
}

func TestHashInjective(t *testing.T) {
	seen := map[int64]cell.Cell{}
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			c := cell.Cell{X: x, Y: y}
			h := c.Hash()
			if prev, ok := seen[h]; ok {
				t.Fatalf("hash collision: %v and %v both hash to %d", prev, c, h)
			}
			seen[h] = c
		}
	}
}

func TestNewRejectsOutOfDomain(t *testing.T) {
	_, err := cell.New(cell.MaxCoordinate+1, 0)
	require.ErrorIs(t, err, cell.ErrOutOfDomain)

	c, err := cell.New(1, 2)
	require.NoError(t, err)
	require.Equal(t, cell.Cell{X: 1, Y: 2}, c)
}

func TestAddSub(t *testing.T) {
	a := cell.Cell{X: 1, Y: 2}
	b := cell.Cell{X: 3, Y: -1}
	require.Equal(t, cell.Cell{X: 4, Y: 1}, a.Add(b))
	require.Equal(t, cell.Cell{X: -2, Y: 3}, a.Sub(b))
}
