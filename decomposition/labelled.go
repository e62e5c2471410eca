package decomposition

import (
	"github.com/google/uuid"

	"github.com/tessellate-go/forma/pattern"
)

// Labelled pairs a decomposition result with an identity that stays with
// the value, so a caller holding it can refer to the region without
// depending on its position in a MultiPattern. IDs are not derived from
// the cells: labelling a regenerated MultiPattern yields new IDs, even for
// regions with identical cells.
type Labelled struct {
	ID      uuid.UUID
	Pattern pattern.Pattern
}

// LabelComponents assigns a fresh random uuid to every member of mp, in
// mp's existing order.
func LabelComponents(mp pattern.MultiPattern) []Labelled {
	out := make([]Labelled, len(mp))
	for i, p := range mp {
		out[i] = Labelled{ID: uuid.New(), Pattern: p}
	}
	return out
}
