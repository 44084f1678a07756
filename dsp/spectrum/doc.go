// Package spectrum provides amplitude, phase and energy views of complex
// spectrum bins produced by package fourier.
//
// Amplitudes follow the single-sided 2|X[k]|/N convention with the DC bin
// reported as zero.
package spectrum
