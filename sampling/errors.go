package sampling

import "errors"

var (
	// ErrSampleTooLarge indicates n exceeds the domain's cell count for a
	// uniform without-replacement sample.
	ErrSampleTooLarge = errors.New("sampling: n exceeds domain size")

	// ErrInvalidArgument indicates a negative Poisson radius or Sample
	// count, or a non-positive Mitchell count or candidate-pool size.
	ErrInvalidArgument = errors.New("sampling: invalid argument")
)
