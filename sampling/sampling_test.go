package sampling_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessellate-go/forma/cell"
	"github.com/tessellate-go/forma/pattern"
	"github.com/tessellate-go/forma/sampling"
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

func TestSampleUniformCount(t *testing.T) {
	domain := square(10, 10)
	rng := rand.New(rand.NewSource(1))

	out, err := sampling.Sample(domain, 20, rng)
	require.NoError(t, err)
	require.Equal(t, 20, out.Size())
	for _, c := range out.CellList() {
		require.True(t, domain.HasCell(c.X, c.Y))
	}
}

func TestSampleTooLarge(t *testing.T) {
	domain := square(3, 3)
	_, err := sampling.Sample(domain, 10, nil)
	require.ErrorIs(t, err, sampling.ErrSampleTooLarge)
}

func TestSampleNegativeCount(t *testing.T) {
	domain := square(3, 3)
	_, err := sampling.Sample(domain, -1, nil)
	require.ErrorIs(t, err, sampling.ErrInvalidArgument)
}

func TestSamplePoissonMinimumDistance(t *testing.T) {
	domain := square(20, 20)
	rng := rand.New(rand.NewSource(7))

	out, err := sampling.SamplePoisson(domain, cell.EuclideanMeasure, 3.0, rng)
	require.NoError(t, err)
	require.Greater(t, out.Size(), 1)

	cells := out.CellList()
	for i := range cells {
		for j := range cells {
			if i == j {
				continue
			}
			require.GreaterOrEqual(t, cell.EuclideanMeasure(cells[i], cells[j]), 3.0)
		}
	}
}

func TestSamplePoissonRejectsNegativeRadius(t *testing.T) {
	_, err := sampling.SamplePoisson(square(3, 3), cell.EuclideanMeasure, -1, nil)
	require.ErrorIs(t, err, sampling.ErrInvalidArgument)
}

func TestSampleMitchellPlacesRequestedCount(t *testing.T) {
	domain := square(15, 15)
	rng := rand.New(rand.NewSource(3))

	out, err := sampling.SampleMitchell(domain, cell.EuclideanMeasure, 10, 5, rng)
	require.NoError(t, err)
	require.Equal(t, 10, out.Size())
}

func TestSampleMitchellSpreadsBetterThanSingleCandidate(t *testing.T) {
	domain := square(20, 20)

	wide, err := sampling.SampleMitchell(domain, cell.EuclideanMeasure, 8, 10, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	narrow, err := sampling.SampleMitchell(domain, cell.EuclideanMeasure, 8, 1, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	require.GreaterOrEqual(t, minPairwise(wide), minPairwise(narrow))
	require.GreaterOrEqual(t, minPairwise(wide), 0.0)
	require.GreaterOrEqual(t, minPairwise(narrow), 0.0)
}

func minPairwise(p pattern.Pattern) float64 {
	cells := p.CellList()
	if len(cells) < 2 {
		return 0
	}
	best := cell.EuclideanMeasure(cells[0], cells[1])
	for i := range cells {
		for j := range cells {
			if i == j {
				continue
			}
			if d := cell.EuclideanMeasure(cells[i], cells[j]); d < best {
				best = d
			}
		}
	}
	return best
}

func TestSampleMitchellInvalidArguments(t *testing.T) {
	domain := square(5, 5)
	_, err := sampling.SampleMitchell(domain, cell.EuclideanMeasure, 0, 5, nil)
	require.ErrorIs(t, err, sampling.ErrInvalidArgument)

	_, err = sampling.SampleMitchell(domain, cell.EuclideanMeasure, 3, 0, nil)
	require.ErrorIs(t, err, sampling.ErrInvalidArgument)

	_, err = sampling.SampleMitchell(domain, cell.EuclideanMeasure, 100, 5, nil)
	require.ErrorIs(t, err, sampling.ErrSampleTooLarge)
}
