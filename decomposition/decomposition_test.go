package decomposition_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/decomposition"
	"github.com/tessellate-go/forma/neighbourhood"
	"github.com/tessellate-go/forma/pattern"
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

func TestFloodFillAndConnectedComponents(t *testing.T) {
	p := pattern.FromMatrix([][]int{
		{1, 1, 0, 1},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
	})
	comp := decomposition.FloodFill(p, cell.Cell{X: 0, Y: 0}, neighbourhood.VonNeumann())
	require.Equal(t, 2, comp.Size())

	all := decomposition.ConnectedComponents(p, neighbourhood.VonNeumann())
	require.Equal(t, 3, all.Size())
	require.Equal(t, p.Size(), all.TotalCells())
}

func TestEnclosedVoids(t *testing.T) {
	ring := square(5, 5).Difference(square(3, 3).Translate(1, 1))
	voids := decomposition.EnclosedVoids(ring, neighbourhood.VonNeumann())
	require.Equal(t, 1, voids.Size())
	require.Equal(t, 9, voids.At(0).Size())
}

func TestBSPPartition(t *testing.T) {
	p := square(80, 20)
	rng := rand.New(rand.NewSource(0))
	segments, err := decomposition.BSP(p, 50, rng)
	require.NoError(t, err)

	total := 0
	for _, seg := range segments {
		require.LessOrEqual(t, seg.Size(), 50)
		total += seg.Size()
	}
	require.Equal(t, p.Size(), total)
	require.LessOrEqual(t, segments.Size(), 32)

	_, err = decomposition.BSP(p, 0, rng)
	require.ErrorIs(t, err, decomposition.ErrInvalidArgument)
}

func TestMaxRectangleOnSquareWithHole(t *testing.T) {
	withHole := square(10, 10)
	b := pattern.NewBuilder()
	for _, c := range withHole.CellList() {
		if c.X == 5 && c.Y == 5 {
			continue
		}
		b.InsertCell(c)
	}
	withHole = b.Build()

	rect, err := decomposition.MaxRectangle(withHole)
	require.NoError(t, err)
	require.Equal(t, 50, rect.Size())

	full, err := decomposition.MaxRectangle(square(10, 10))
	require.NoError(t, err)
	require.Equal(t, 100, full.Size())

	_, err = decomposition.MaxRectangle(pattern.New())
	require.ErrorIs(t, err, decomposition.ErrEmptyPattern)
}

func TestConvexHullOfFiveCellSquare(t *testing.T) {
	b := pattern.NewBuilder()
	corners := [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 2}}
	for _, c := range corners {
		b.Insert(c[0], c[1])
	}
	p := b.Build()

	hull, err := decomposition.ConvexHull(p)
	require.NoError(t, err)
	require.Equal(t, square(5, 5).Size(), hull.Size())
}

func TestNeighbourhoodCategories(t *testing.T) {
	p := square(3, 3)
	cats := decomposition.NeighbourhoodCategories(p, neighbourhood.Moore())
	require.Equal(t, p.Size(), cats.TotalCells())
}

func TestLabelComponentsAssignsUniqueIDs(t *testing.T) {
	twoBlocks := square(3, 3).Union(square(3, 3).Translate(5, 0))
	mp := decomposition.ConnectedComponents(twoBlocks, neighbourhood.VonNeumann())
	labelled := decomposition.LabelComponents(mp)
	require.Len(t, labelled, mp.Size())
	if len(labelled) > 1 {
		require.NotEqual(t, labelled[0].ID, labelled[1].ID)
	}
}
