package fourier

import (
	"fmt"
	"strings"
)

// Engine is a forward/inverse complex DFT backend.
//
// Implementations do not pad: both directions require a non-empty,
// power-of-two length input and return a slice of the same length.
// Forward is unnormalized, Inverse scales by 1/N.
type Engine interface {
	Forward(in []complex128) ([]complex128, error)
	Inverse(in []complex128) ([]complex128, error)
}

// Engine names accepted by NewEngine.
const (
	EngineRecursive = "recursive"
	EnginePlanned   = "planned"
	EngineGonum     = "gonum"
)

// EngineNames lists the backends accepted by NewEngine.
func EngineNames() []string {
	return []string{EngineRecursive, EnginePlanned, EngineGonum}
}

// NewEngine returns the backend registered under name.
func NewEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineRecursive:
		return NewRecursive(), nil
	case EnginePlanned:
		return NewPlanned(), nil
	case EngineGonum:
		return NewGonum(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}
