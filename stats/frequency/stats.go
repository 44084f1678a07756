// Package frequency computes shape descriptors of a two-sided amplitude
// spectrum.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultRolloff is the energy fraction used by [Calculate] for Rolloff.
const DefaultRolloff = 0.85

// Stats holds shape descriptors of the non-mirrored half of a spectrum.
type Stats struct {
	Bins     int     // bins considered, N/2+1
	Centroid float64 // amplitude-weighted mean frequency (Hz)
	Spread   float64 // amplitude-weighted standard deviation around Centroid (Hz)
	Flatness float64 // geometric over arithmetic mean, 0..1
	Rolloff  float64 // frequency below which DefaultRolloff of the energy lies (Hz)
}

// half returns bins [0, N/2] of a two-sided spectrum.
func half(amplitudes []float64) []float64 {
	return amplitudes[:len(amplitudes)/2+1]
}

func binFreq(k int, sampleRate float64, n int) float64 {
	return float64(k) * sampleRate / float64(n)
}

// Calculate computes all descriptors of amplitudes, a two-sided spectrum of
// length N sampled at sampleRate. Bin k lies at k*sampleRate/N.
func Calculate(amplitudes []float64, sampleRate float64) Stats {
	n := len(amplitudes)
	if n < 2 {
		return Stats{Bins: n}
	}
	h := half(amplitudes)
	sum := floats.Sum(h)

	s := Stats{Bins: len(h)}
	s.Centroid = centroid(h, sampleRate, n, sum)
	s.Spread = spread(h, sampleRate, n, s.Centroid, sum)
	s.Flatness = flatness(h)
	s.Rolloff = rolloff(h, sampleRate, n, DefaultRolloff)
	return s
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_k * a_k) / sum(a_k)
func Centroid(amplitudes []float64, sampleRate float64) float64 {
	if len(amplitudes) < 2 {
		return 0
	}
	h := half(amplitudes)
	return centroid(h, sampleRate, len(amplitudes), floats.Sum(h))
}

func centroid(h []float64, sampleRate float64, n int, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	weighted := 0.0
	for k, v := range h {
		weighted += binFreq(k, sampleRate, n) * v
	}
	return weighted / sum
}

func spread(h []float64, sampleRate float64, n int, cent, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	acc := 0.0
	for k, v := range h {
		d := binFreq(k, sampleRate, n) - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// Flatness returns the spectral flatness (Wiener entropy) in 0..1. The DC bin
// is skipped. A zero bin makes the geometric mean and the result 0.
func Flatness(amplitudes []float64) float64 {
	if len(amplitudes) < 2 {
		return 0
	}
	return flatness(half(amplitudes))
}

func flatness(h []float64) float64 {
	bins := h[1:]
	if len(bins) == 0 {
		return 0
	}
	mean := floats.Sum(bins) / float64(len(bins))
	if mean == 0 {
		return 0
	}
	logSum := 0.0
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
		logSum += math.Log(v)
	}
	return math.Exp(logSum/float64(len(bins))) / mean
}

// Rolloff returns the frequency below which fraction of the spectral energy
// lies.
func Rolloff(amplitudes []float64, sampleRate, fraction float64) float64 {
	if len(amplitudes) < 2 {
		return 0
	}
	return rolloff(half(amplitudes), sampleRate, len(amplitudes), fraction)
}

func rolloff(h []float64, sampleRate float64, n int, fraction float64) float64 {
	total := floats.Dot(h, h)
	if total == 0 {
		return 0
	}
	threshold := fraction * total
	acc := 0.0
	for k, v := range h {
		acc += v * v
		if acc >= threshold {
			return binFreq(k, sampleRate, n)
		}
	}
	return binFreq(len(h)-1, sampleRate, n)
}
