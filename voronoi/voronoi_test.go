package voronoi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
	"github.com/tessellate-go/forma/voronoi"
)

func square(w, h int) pattern.Pattern {
	b := pattern.NewBuilder()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			b.Insert(x, y)
		}
	}
	return b.Build()
}

func TestVoronoiThreeSeedsInTenByTenSquare(t *testing.T) {
	domain := square(10, 10)
	seeds := []cell.Cell{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 9}}

	segments, err := voronoi.Voronoi(seeds, domain, cell.ManhattanMeasure)
	require.NoError(t, err)
	require.Equal(t, 3, segments.Size())

	for i, s := range seeds {
		require.True(t, segments.At(i).Contains(s))
	}

	require.Equal(t, domain.Size(), segments.TotalCells())
}

func TestVoronoiNoSeeds(t *testing.T) {
	_, err := voronoi.Voronoi(nil, square(3, 3), cell.ManhattanMeasure)
	require.ErrorIs(t, err, voronoi.ErrNoSeeds)
}

func TestRelaxConverges(t *testing.T) {
	domain := square(10, 10)
	seeds := []cell.Cell{{X: 1, Y: 1}, {X: 8, Y: 8}}

	segments, newSeeds, converged, err := voronoi.Relax(seeds, domain, cell.ManhattanMeasure, 20)
	require.NoError(t, err)
	require.Len(t, newSeeds, 2)
	require.Equal(t, domain.Size(), segments.TotalCells())
	require.True(t, converged)
}

func TestRelaxNoSeeds(t *testing.T) {
	_, _, _, err := voronoi.Relax(nil, square(3, 3), cell.ManhattanMeasure, 5)
	require.ErrorIs(t, err, voronoi.ErrNoSeeds)
}
