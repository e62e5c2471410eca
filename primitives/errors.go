package primitives

import "errors"

// ErrInvalidArgument indicates a non-positive dimension, negative radius,
// or non-positive segment count was supplied to a rasteriser.
var ErrInvalidArgument = errors.New("primitives: invalid argument")
