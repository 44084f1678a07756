package budget

import "errors"

var (
	// ErrEmptyInput is returned when the amplitude spectrum is empty.
	ErrEmptyInput = errors.New("budget: amplitudes must not be empty")

	// ErrLengthMismatch is returned when spectrum and amplitudes differ in length.
	ErrLengthMismatch = errors.New("budget: spectrum and amplitudes must have same length")

	// ErrInvalidRatio is returned for a negative or NaN retention ratio.
	ErrInvalidRatio = errors.New("budget: ratio must be >= 0")
)
