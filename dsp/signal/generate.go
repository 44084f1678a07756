package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// irwinHallTerms is the number of uniform draws summed per noise sample.
const irwinHallTerms = 12

// Harmonic describes one sinusoidal component A*sin(2*pi*f*t + phase).
type Harmonic struct {
	Amplitude float64
	Frequency float64 // Hz
	Phase     float64 // radians
}

// At evaluates the harmonic at time t in seconds.
func (h Harmonic) At(t float64) float64 {
	return h.Amplitude * math.Sin(2*math.Pi*h.Frequency*t+h.Phase)
}

// Generator produces noise from a random source it owns. The source is
// seeded once and advances across calls, so a Generator is never reseeded
// implicitly.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the generator draw from rng.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// NewGenerator creates a noise generator. Without options it is seeded with 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.seed))
	}
	return g
}

// Seed returns the seed the generator was created with. It is meaningless
// when the generator was built with [WithRand].
func (g *Generator) Seed() int64 {
	return g.seed
}

// IrwinHall generates approximately Gaussian noise with zero mean and unit
// variance: every sample is the sum of twelve uniform [0,1) draws minus 6.
func (g *Generator) IrwinHall(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		sum := 0.0
		for range irwinHallTerms {
			sum += g.rng.Float64()
		}
		out[i] = sum - irwinHallTerms/2
	}
	return out, nil
}

// Synthesis is a sampled sum of harmonics.
type Synthesis struct {
	Time   []float64 // seconds, Time[i] = i/sampleRate
	Signal []float64
	Energy float64 // sum of Signal[i]^2
}

// Synthesize samples the sum of harmonics at t = i/sampleRate for i in
// [0, samples).
func Synthesize(harmonics []Harmonic, sampleRate float64, samples int) (Synthesis, error) {
	if samples <= 0 {
		return Synthesis{}, fmt.Errorf("synthesis samples must be > 0: %d", samples)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Synthesis{}, fmt.Errorf("synthesis sample rate must be > 0: %f", sampleRate)
	}

	s := Synthesis{
		Time:   make([]float64, samples),
		Signal: make([]float64, samples),
	}
	dt := 1 / sampleRate
	for i := range samples {
		t := float64(i) * dt
		v := 0.0
		for _, h := range harmonics {
			v += h.At(t)
		}
		s.Time[i] = t
		s.Signal[i] = v
		s.Energy += v * v
	}
	return s, nil
}

// Calibration is an ideal signal with noise scaled to a fixed energy ratio.
type Calibration struct {
	Signal       []float64 // ideal + Beta*noise
	Beta         float64
	SignalEnergy float64
	NoiseEnergy  float64
	// Degenerate is set when the noise vector has zero energy. Beta is 0 and
	// no noise is injected in that case.
	Degenerate bool
}

// Calibrate adds noise to ideal so that the injected noise energy equals
// alpha times the energy of ideal:
//
//	beta = sqrt(sum(ideal^2) * alpha / sum(noise^2))
func Calibrate(ideal, noise []float64, alpha float64) (Calibration, error) {
	if len(ideal) == 0 {
		return Calibration{}, fmt.Errorf("calibrate input must not be empty")
	}
	if len(ideal) != len(noise) {
		return Calibration{}, fmt.Errorf("calibrate length mismatch: %d != %d", len(ideal), len(noise))
	}
	if math.IsNaN(alpha) || alpha < 0 || math.IsInf(alpha, 0) {
		return Calibration{}, fmt.Errorf("calibrate alpha must be >= 0: %f", alpha)
	}

	c := Calibration{
		Signal:       make([]float64, len(ideal)),
		SignalEnergy: floats.Dot(ideal, ideal),
		NoiseEnergy:  floats.Dot(noise, noise),
	}
	copy(c.Signal, ideal)

	if c.NoiseEnergy == 0 {
		c.Degenerate = true
		return c, nil
	}
	c.Beta = math.Sqrt(c.SignalEnergy * alpha / c.NoiseEnergy)
	if c.Beta == 0 {
		return c, nil
	}

	scaled := make([]float64, len(noise))
	vecmath.ScaleBlock(scaled, noise, c.Beta)
	vecmath.AddBlockInPlace(c.Signal, scaled)
	return c, nil
}
