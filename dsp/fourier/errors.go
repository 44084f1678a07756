package fourier

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a transform is requested on an empty sequence.
	ErrEmptyInput = errors.New("fourier: input must not be empty")

	// ErrNotPowerOfTwo is returned by unpadded transforms for lengths that are
	// not a power of two.
	ErrNotPowerOfTwo = errors.New("fourier: length must be a power of two")

	// ErrUnknownEngine is returned by NewEngine for an unrecognized backend name.
	ErrUnknownEngine = errors.New("fourier: unknown engine")
)

func validateLength(n int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if !IsPowerOf2(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	return nil
}
