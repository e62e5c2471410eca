package sampling

import (
	"math/rand"

	"github.com/tessellate-go/forma/pattern"
	"github.com/tessellate-go/forma/randutil"
)

// Sample draws n cells from domain uniformly without replacement, by
// shuffling the domain's cell list and taking the first n. Returns
// ErrSampleTooLarge if n exceeds domain.Size(). A nil rng falls back to
// the deterministic zero-seed stream.
func Sample(domain pattern.Pattern, n int, rng *rand.Rand) (pattern.Pattern, error) {
	if n < 0 {
		return pattern.Pattern{}, ErrInvalidArgument
	}
	if n > domain.Size() {
		return pattern.Pattern{}, ErrSampleTooLarge
	}

	list := domain.CellList()
	randutil.ShuffleInPlace(list, rng)

	b := pattern.NewBuilder()
	for _, c := range list[:n] {
		b.InsertCell(c)
	}
	return b.Build(), nil
}
