package denoise

import (
	"math"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/spectrum"
	"github.com/cwbudde/algo-denoise/stats/frequency"
	timestats "github.com/cwbudde/algo-denoise/stats/time"
)

// Report summarizes the denoise quality of the last recompute in
// engineering units.
type Report struct {
	Delta        float64
	DeltaDefined bool
	// DeltaDB is Delta in dB. It is NaN when Delta is undefined and -Inf for
	// a perfect reconstruction.
	DeltaDB float64
	// InputSNRdB is the ideal-to-injected-noise energy ratio in dB. It is
	// +Inf when no noise was injected.
	InputSNRdB float64
	// OutputSNRdB is -DeltaDB.
	OutputSNRdB float64

	PeakFrequency         float64 // Hz, strongest bin of the clean spectrum
	RetainedHalfBandwidth int
	ZeroedBins            int

	InputLevels timestats.Stats
	CleanLevels timestats.Stats
	InputShape  frequency.Stats
	CleanShape  frequency.Stats
}

// Report returns quality figures for the current buffers.
func (p *Pipeline) Report() Report {
	f := p.frame
	r := Report{
		Delta:                 f.delta,
		DeltaDefined:          f.deltaDefined,
		DeltaDB:               math.NaN(),
		OutputSNRdB:           math.NaN(),
		PeakFrequency:         math.NaN(),
		RetainedHalfBandwidth: f.band.HalfWidth,
		ZeroedBins:            f.band.Zeroed(),
		InputLevels:           timestats.Calculate(f.input),
		CleanLevels:           timestats.Calculate(f.clean),
		InputShape:            frequency.Calculate(f.inputAmp, float64(p.cfg.SampleRate)),
		CleanShape:            frequency.Calculate(f.cleanAmp, float64(p.cfg.SampleRate)),
	}
	if f.deltaDefined {
		r.DeltaDB = core.LinearPowerToDB(f.delta)
		r.OutputSNRdB = -r.DeltaDB
	}

	c := f.calibration
	injected := c.Beta * c.Beta * c.NoiseEnergy
	switch {
	case injected > 0:
		r.InputSNRdB = core.LinearPowerToDB(c.SignalEnergy / injected)
	case c.SignalEnergy > 0:
		r.InputSNRdB = math.Inf(1)
	default:
		r.InputSNRdB = math.NaN()
	}

	if k := spectrum.PeakBin(f.cleanAmp); k >= 0 && k < len(f.freqs) {
		r.PeakFrequency = f.freqs[k]
	}
	return r
}
