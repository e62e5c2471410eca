package voronoi

import "errors"

var (
	// ErrNoSeeds indicates an empty seed slice.
	ErrNoSeeds = errors.New("voronoi: no seeds")

	// ErrInvalidArgument indicates a malformed argument. Neither Voronoi nor
	// Relax returns it; Relax treats a non-positive maxIter as unbounded.
	ErrInvalidArgument = errors.New("voronoi: invalid argument")
)
