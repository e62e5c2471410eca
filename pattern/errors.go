package pattern

import "errors"

// Sentinel errors for pattern operations.
var (
	// ErrEmptyPattern indicates rcell, medoid, centroid or max-rectangle-style
	// queries were made against a pattern with zero cells.
	ErrEmptyPattern = errors.New("pattern: empty pattern")

	// ErrOutOfDomain indicates an operation would emit a cell outside
	// [-cell.MaxCoordinate, cell.MaxCoordinate].
	ErrOutOfDomain = errors.New("pattern: cell out of domain")

	// ErrInvalidArgument indicates a non-positive dimension, negative radius,
	// or otherwise malformed argument.
	ErrInvalidArgument = errors.New("pattern: invalid argument")
)
