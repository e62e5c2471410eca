package primitives_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/neighbourhood"
	"github.com/tessellate-go/forma/primitives"
)

func floodFill(present func(cell.Cell) bool, seed cell.Cell, n neighbourhood.Neighbourhood, bound func(cell.Cell) bool) map[int64]cell.Cell {
	visited := map[int64]cell.Cell{seed.Hash(): seed}
	queue := []cell.Cell{seed}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, o := range n.Offsets() {
			nb := c.Add(o)
			if _, ok := visited[nb.Hash()]; ok {
				continue
			}
			if !bound(nb) || !present(nb) {
				continue
			}
			visited[nb.Hash()] = nb
			queue = append(queue, nb)
		}
	}
	return visited
}

func withinRadius(r int) func(cell.Cell) bool {
	return func(c cell.Cell) bool {
		return c.X >= -r && c.X <= r && c.Y >= -r && c.Y <= r
	}
}

func TestSquareSizeAndShape(t *testing.T) {
	sq, err := primitives.Square(4, 0)
	require.NoError(t, err)
	require.Equal(t, 16, sq.Size())

	two, err := primitives.Square(2, 0)
	require.NoError(t, err)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			require.True(t, two.HasCell(x, y))
		}
	}

	_, err = primitives.Square(0, 0)
	require.ErrorIs(t, err, primitives.ErrInvalidArgument)
}

func TestCircleInteriorDistance(t *testing.T) {
	r := 6
	circ, err := primitives.Circle(r)
	require.NoError(t, err)

	filled := floodFill(func(c cell.Cell) bool { return !circ.Contains(c) }, cell.Cell{X: 0, Y: 0}, neighbourhood.VonNeumann(), withinRadius(r))
	require.Greater(t, len(filled), 0)
	for _, c := range filled {
		require.Less(t, cell.Euclidean(c, cell.Cell{}), float64(r))
	}
}

func TestLineContiguityAndEndpoints(t *testing.T) {
	a := cell.Cell{X: -3, Y: 2}
	b := cell.Cell{X: 4, Y: -5}
	line := primitives.Line(a, b)

	require.True(t, line.Contains(a))
	require.True(t, line.Contains(b))

	reached := floodFill(line.Contains, a, neighbourhood.Moore(), func(cell.Cell) bool { return true })
	require.Equal(t, line.Size(), len(reached))
}

func TestQuadBezierContiguity(t *testing.T) {
	p0 := cell.Cell{X: 0, Y: 0}
	p1 := cell.Cell{X: 5, Y: 10}
	p2 := cell.Cell{X: 10, Y: 0}
	curve, err := primitives.QuadBezier(p0, p1, p2, 20)
	require.NoError(t, err)
	require.True(t, curve.Contains(p0))
	require.True(t, curve.Contains(p2))

	reached := floodFill(curve.Contains, p0, neighbourhood.Moore(), func(cell.Cell) bool { return true })
	require.Equal(t, curve.Size(), len(reached))

	_, err = primitives.QuadBezier(p0, p1, p2, 0)
	require.ErrorIs(t, err, primitives.ErrInvalidArgument)
}
