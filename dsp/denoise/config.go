package denoise

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/fourier"
	"github.com/cwbudde/algo-denoise/dsp/signal"
)

// MinPointCount is the smallest accepted transform length.
const MinPointCount = 1024

// HarmonicCount is the number of harmonics in a Config.
const HarmonicCount = 3

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("denoise: invalid config")

// Config is the full parameter set of a pipeline run. Two configs are equal
// when all fields are equal, which makes Config usable with ==.
type Config struct {
	// ShowNoise is a presentation flag carried for the caller. It does not
	// affect computation but is part of config equality.
	ShowNoise  bool
	SampleRate int // Hz, >= 1
	PointCount int // power of two, >= MinPointCount
	NoiseAlpha float64
	Gamma      float64 // energy retention ratio of the band-stop filter
	Harmonics  [HarmonicCount]signal.Harmonic
}

// DefaultConfig returns a 10 Hz sine of amplitude 10 sampled at 1024 Hz
// with 20% noise energy and no filtering.
func DefaultConfig() Config {
	return Config{
		ShowNoise:  true,
		SampleRate: 1024,
		PointCount: 1024,
		NoiseAlpha: 0.2,
		Gamma:      1.0,
		Harmonics: [HarmonicCount]signal.Harmonic{
			{Amplitude: 10, Frequency: 10},
		},
	}
}

// Validate reports whether c satisfies the pipeline invariants.
func (c Config) Validate() error {
	if c.SampleRate < 1 {
		return fmt.Errorf("%w: sample rate must be >= 1: %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.PointCount < MinPointCount {
		return fmt.Errorf("%w: point count must be >= %d: %d", ErrInvalidConfig, MinPointCount, c.PointCount)
	}
	if !fourier.IsPowerOf2(c.PointCount) {
		return fmt.Errorf("%w: point count must be a power of two: %d", ErrInvalidConfig, c.PointCount)
	}
	if !core.IsFinite(c.NoiseAlpha) || c.NoiseAlpha < 0 {
		return fmt.Errorf("%w: noise alpha must be >= 0: %f", ErrInvalidConfig, c.NoiseAlpha)
	}
	if !core.IsFinite(c.Gamma) || c.Gamma < 0 {
		return fmt.Errorf("%w: gamma must be >= 0: %f", ErrInvalidConfig, c.Gamma)
	}
	for i, h := range c.Harmonics {
		if !core.IsFinite(h.Amplitude) || !core.IsFinite(h.Frequency) || !core.IsFinite(h.Phase) {
			return fmt.Errorf("%w: harmonic %d must be finite: %+v", ErrInvalidConfig, i+1, h)
		}
	}
	return nil
}

// StepPointCount applies the control-surface stepping rule to a requested
// point count: the request is raised to MinPointCount, then any increase
// doubles old and any decrease halves it. The result is always a power of
// two >= MinPointCount when old is.
func StepPointCount(old, requested int) int {
	if requested < MinPointCount {
		requested = MinPointCount
	}
	if old < MinPointCount || !fourier.IsPowerOf2(old) {
		return fourier.NextPowerOf2(requested)
	}
	switch {
	case requested > old:
		return old << 1
	case requested < old:
		return old >> 1
	default:
		return old
	}
}

// Clamp returns c with every field forced into its valid range. prev is
// the config the edit started from; it drives the point count stepping.
func (c Config) Clamp(prev Config) Config {
	if c.SampleRate < 1 {
		c.SampleRate = 1
	}
	if !(c.NoiseAlpha >= 0) {
		c.NoiseAlpha = 0
	}
	c.Gamma = core.Clamp(c.Gamma, 0, 1)
	c.PointCount = StepPointCount(prev.PointCount, c.PointCount)
	return c
}
