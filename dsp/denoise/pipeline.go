package denoise

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/cwbudde/algo-denoise/dsp/filter/budget"
	"github.com/cwbudde/algo-denoise/dsp/fourier"
	"github.com/cwbudde/algo-denoise/dsp/signal"
	"github.com/cwbudde/algo-denoise/dsp/spectrum"
	"go.uber.org/zap"
)

// Pipeline owns the configuration, the noise realization and every derived
// buffer of one denoise run.
//
// A Pipeline is not safe for concurrent use. Accessors return copies.
type Pipeline struct {
	cfg    Config
	gen    *signal.Generator
	engine fourier.Engine
	logger *zap.Logger

	genOpts []signal.Option

	noise []float64
	frame frame

	recomputes  int
	noiseEpochs int
}

// frame holds the buffers computed from one config and noise vector.
type frame struct {
	time     []float64
	ideal    []float64
	input    []float64
	clean    []float64
	freqs    []float64
	inputAmp []float64
	cleanAmp []float64

	spectrum []complex128
	filtered []complex128

	calibration  signal.Calibration
	band         budget.Band
	delta        float64
	deltaDefined bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConfig sets the initial configuration. The default is [DefaultConfig].
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) {
		p.cfg = cfg
	}
}

// WithSeed seeds the pipeline's noise source.
func WithSeed(seed int64) Option {
	return func(p *Pipeline) {
		p.genOpts = append(p.genOpts, signal.WithSeed(seed))
	}
}

// WithRand makes the pipeline draw noise from rng. The pipeline becomes the
// only user of rng.
func WithRand(rng *rand.Rand) Option {
	return func(p *Pipeline) {
		p.genOpts = append(p.genOpts, signal.WithRand(rng))
	}
}

// WithEngine selects the transform backend. The default is the recursive
// radix-2 engine.
func WithEngine(e fourier.Engine) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.engine = e
		}
	}
}

// WithLogger sets the logger for recompute events. The default discards logs.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a pipeline and computes every buffer for the initial config.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		cfg:    DefaultConfig(),
		engine: fourier.NewRecursive(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.gen = signal.NewGenerator(p.genOpts...)

	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := p.apply(p.cfg, true); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies cfg. It reports whether anything was recomputed: an
// identical config is a no-op. An invalid config is rejected and leaves the
// pipeline unchanged.
func (p *Pipeline) Update(cfg Config) (bool, error) {
	if cfg == p.cfg {
		return false, nil
	}
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	regenerate := cfg.PointCount != p.cfg.PointCount || cfg.SampleRate != p.cfg.SampleRate
	if err := p.apply(cfg, regenerate); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Pipeline) apply(cfg Config, regenerate bool) error {
	start := time.Now()

	noise := p.noise
	if regenerate {
		var err error
		noise, err = p.gen.IrwinHall(cfg.PointCount)
		if err != nil {
			return fmt.Errorf("denoise: generate noise: %w", err)
		}
	}

	f, err := p.compute(cfg, noise)
	if err != nil {
		return err
	}

	p.cfg = cfg
	p.noise = noise
	p.frame = f
	p.recomputes++
	if regenerate {
		p.noiseEpochs++
	}

	p.logger.Debug("recompute",
		zap.Int("points", cfg.PointCount),
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Float64("noise_alpha", cfg.NoiseAlpha),
		zap.Float64("gamma", cfg.Gamma),
		zap.Bool("noise_regenerated", regenerate),
		zap.Float64("beta", f.calibration.Beta),
		zap.Int("half_bandwidth", f.band.HalfWidth),
		zap.Int("zeroed_bins", f.band.Zeroed()),
		zap.Float64("delta", f.delta),
		zap.Bool("delta_defined", f.deltaDefined),
		zap.Duration("elapsed", time.Since(start)),
	)
	if f.calibration.Degenerate {
		p.logger.Warn("noise vector has zero energy, no noise injected")
	}
	if !f.deltaDefined {
		p.logger.Warn("ideal signal has zero energy, delta undefined")
	}
	return nil
}

func (p *Pipeline) compute(cfg Config, noise []float64) (frame, error) {
	var f frame

	syn, err := signal.Synthesize(cfg.Harmonics[:], float64(cfg.SampleRate), cfg.PointCount)
	if err != nil {
		return f, fmt.Errorf("denoise: synthesize: %w", err)
	}
	f.time = syn.Time
	f.ideal = syn.Signal

	f.calibration, err = signal.Calibrate(syn.Signal, noise, cfg.NoiseAlpha)
	if err != nil {
		return f, fmt.Errorf("denoise: calibrate noise: %w", err)
	}
	f.input = f.calibration.Signal

	f.spectrum, err = p.engine.Forward(liftReal(f.input))
	if err != nil {
		return f, fmt.Errorf("denoise: forward transform: %w", err)
	}
	f.inputAmp = spectrum.Amplitude(f.spectrum)
	f.freqs = spectrum.BinFrequencies(len(f.spectrum), float64(cfg.SampleRate))

	f.filtered, f.band, err = budget.Apply(f.spectrum, f.inputAmp, cfg.Gamma)
	if err != nil {
		return f, fmt.Errorf("denoise: filter spectrum: %w", err)
	}
	f.cleanAmp = spectrum.Amplitude(f.filtered)

	restored, err := p.engine.Inverse(f.filtered)
	if err != nil {
		return f, fmt.Errorf("denoise: inverse transform: %w", err)
	}
	f.clean = make([]float64, len(restored))
	for i, c := range restored {
		f.clean[i] = real(c)
	}

	f.delta, f.deltaDefined = reconstructionError(f.clean, f.ideal)
	return f, nil
}

// reconstructionError returns sum((clean-ideal)^2)/sum(ideal^2). It is
// undefined for a silent ideal signal.
func reconstructionError(clean, ideal []float64) (float64, bool) {
	num, den := 0.0, 0.0
	for i := range ideal {
		d := clean[i] - ideal[i]
		num += d * d
		den += ideal[i] * ideal[i]
	}
	if den == 0 {
		return 0, false
	}
	return num / den, true
}

func liftReal(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// Config returns the current configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// ShowNoise reports the presentation flag of the current configuration.
func (p *Pipeline) ShowNoise() bool { return p.cfg.ShowNoise }

// Time returns the sample times in seconds.
func (p *Pipeline) Time() []float64 { return slices.Clone(p.frame.time) }

// IdealSignal returns the noise-free harmonic sum.
func (p *Pipeline) IdealSignal() []float64 { return slices.Clone(p.frame.ideal) }

// Noise returns the raw, unscaled noise realization.
func (p *Pipeline) Noise() []float64 { return slices.Clone(p.noise) }

// InputSignal returns the ideal signal plus calibrated noise.
func (p *Pipeline) InputSignal() []float64 { return slices.Clone(p.frame.input) }

// CleanSignal returns the real part of the inverse transform of the
// filtered spectrum.
func (p *Pipeline) CleanSignal() []float64 { return slices.Clone(p.frame.clean) }

// Frequencies returns the bin frequency axis in Hz.
func (p *Pipeline) Frequencies() []float64 { return slices.Clone(p.frame.freqs) }

// Spectrum returns the forward transform of the input signal.
func (p *Pipeline) Spectrum() []complex128 { return slices.Clone(p.frame.spectrum) }

// FilteredSpectrum returns the spectrum after the band-stop filter.
func (p *Pipeline) FilteredSpectrum() []complex128 { return slices.Clone(p.frame.filtered) }

// InputSpectrumAmplitude returns the amplitude spectrum of the input signal.
func (p *Pipeline) InputSpectrumAmplitude() []float64 { return slices.Clone(p.frame.inputAmp) }

// CleanSpectrumAmplitude returns the amplitude spectrum after filtering.
func (p *Pipeline) CleanSpectrumAmplitude() []float64 { return slices.Clone(p.frame.cleanAmp) }

// Delta returns the normalized squared reconstruction error. ok is false
// when the ideal signal is silent and the error is undefined.
func (p *Pipeline) Delta() (delta float64, ok bool) {
	return p.frame.delta, p.frame.deltaDefined
}

// Stats describes the last recompute.
type Stats struct {
	Beta         float64 // noise scale factor
	SignalEnergy float64 // sum(ideal^2)
	NoiseEnergy  float64 // sum(noise^2) of the raw noise
	Degenerate   bool    // noise had zero energy
	Band         budget.Band
	Delta        float64
	DeltaDefined bool
	Recomputes   int // number of recomputes since New, including the first
	NoiseEpochs  int // number of noise realizations since New
}

// Stats returns diagnostics of the last recompute.
func (p *Pipeline) Stats() Stats {
	c := p.frame.calibration
	return Stats{
		Beta:         c.Beta,
		SignalEnergy: c.SignalEnergy,
		NoiseEnergy:  c.NoiseEnergy,
		Degenerate:   c.Degenerate,
		Band:         p.frame.band,
		Delta:        p.frame.delta,
		DeltaDefined: p.frame.deltaDefined,
		Recomputes:   p.recomputes,
		NoiseEpochs:  p.noiseEpochs,
	}
}
