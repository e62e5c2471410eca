package automata

import "errors"

var (
	// ErrInvalidRule indicates a rule string does not match the "B.../S..."
	// grammar, or a digit falls outside [0, |N|].
	ErrInvalidRule = errors.New("automata: invalid rule string")
)
