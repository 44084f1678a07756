package fourier

import (
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"
)

// Gonum is an engine backed by gonum's complex FFT.
//
// Gonum is not safe for concurrent use.
type Gonum struct {
	ffts map[int]*gonumfourier.CmplxFFT
}

// NewGonum creates a gonum-backed engine.
func NewGonum() *Gonum {
	return &Gonum{ffts: make(map[int]*gonumfourier.CmplxFFT)}
}

func (g *Gonum) fft(n int) (*gonumfourier.CmplxFFT, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	f, ok := g.ffts[n]
	if !ok {
		f = gonumfourier.NewCmplxFFT(n)
		g.ffts[n] = f
	}
	return f, nil
}

// Forward computes the unnormalized forward DFT of in.
func (g *Gonum) Forward(in []complex128) ([]complex128, error) {
	f, err := g.fft(len(in))
	if err != nil {
		return nil, err
	}
	return f.Coefficients(nil, in), nil
}

// Inverse computes the normalized inverse DFT of in. gonum leaves the
// sequence unscaled, so the 1/N factor is applied here.
func (g *Gonum) Inverse(in []complex128) ([]complex128, error) {
	f, err := g.fft(len(in))
	if err != nil {
		return nil, err
	}
	out := f.Sequence(nil, in)
	scale := complex(1/float64(len(in)), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}
