package decomposition

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive BSP max size or other
	// malformed parameter.
	ErrInvalidArgument = errors.New("decomposition: invalid argument")

	// ErrEmptyPattern indicates MaxRectangle or ConvexHull was asked about
	// a pattern with zero cells.
	ErrEmptyPattern = errors.New("decomposition: empty pattern")
)
