// Package fourier implements the discrete Fourier transforms used by the
// denoise pipeline.
//
// The reference transform is a recursive radix-2 decimation-in-time
// Cooley-Tukey FFT. [Transform] zero-pads its input to the next power of two;
// the [Engine] implementations ([Recursive], [Planned], [Gonum]) do not pad
// and reject lengths that are not a power of two so buffer lengths stay
// predictable for callers that index frequency bins.
//
// Transforms are unnormalized in the forward direction and scaled by 1/N in
// the inverse direction, so Inverse(Transform(x)) reproduces x.
package fourier
