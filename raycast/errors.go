package raycast

import "errors"

// ErrInvalidArgument indicates a non-positive radius passed to Cast360.
var ErrInvalidArgument = errors.New("raycast: invalid argument")
