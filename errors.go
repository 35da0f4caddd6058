package freqtrie

import "errors"

var (
	// ErrConstruction is returned when a node would be built from malformed
	// child arrays, or from a negative weight.
	ErrConstruction = errors.New("freqtrie: malformed node")
	// ErrState is returned when a removal would drive a frequency negative.
	ErrState = errors.New("freqtrie: frequency underflow")
)
