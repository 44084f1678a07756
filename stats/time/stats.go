// Package time computes level statistics of a sampled signal.
package time

import (
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	Energy         float64 // sum of squares
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear), 0 for silence
	CrestFactor_dB float64
	ZeroCrossings  int
}

func ampTodB(v float64) float64 {
	return core.LinearPowerToDB(v * v)
}

// Calculate computes all statistics of signal. Empty input yields zero
// levels with -Inf dB values.
func Calculate(signal []float64) Stats {
	s := Stats{Length: len(signal)}
	if len(signal) == 0 {
		s.RMS_dB = math.Inf(-1)
		s.Peak_dB = math.Inf(-1)
		s.CrestFactor_dB = math.Inf(-1)
		return s
	}

	s.DC = stat.Mean(signal, nil)
	s.Energy = floats.Dot(signal, signal)
	s.RMS = math.Sqrt(s.Energy / float64(len(signal)))
	s.Peak = Peak(signal)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	s.RMS_dB = ampTodB(s.RMS)
	s.Peak_dB = ampTodB(s.Peak)
	s.CrestFactor_dB = ampTodB(s.CrestFactor)
	s.ZeroCrossings = ZeroCrossings(signal)
	return s
}

// RMS returns the root mean square of signal, 0 for empty input.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(signal)), math.Abs(floats.Min(signal)))
}

// ZeroCrossings counts sign changes between consecutive samples. Zero
// samples carry the sign of the previous nonzero sample.
func ZeroCrossings(signal []float64) int {
	count := 0
	prev := 0.0
	for _, v := range signal {
		if v == 0 {
			continue
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			count++
		}
		prev = v
	}
	return count
}
