// Package budget implements an energy-budget band-stop filter for spectra of
// real signals.
//
// Instead of a cutoff frequency the filter takes a retention ratio. Bins are
// retained symmetrically from both ends of the spectrum (the low bins and
// their mirrored counterparts near N-1) until the retained energy exceeds
// ratio times the total spectral energy; every bin strictly between the two
// retained edges is zeroed. A harmonic signal concentrates its energy in a
// few low bins while white noise spreads evenly over all bins, so a ratio
// close to the signal's share of the energy keeps the signal and removes most
// of the noise.
package budget
