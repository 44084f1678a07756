package spectrum

import (
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Amplitude returns 2|X[k]|/N for each bin, with bin 0 forced to 0.
//
// The zero-frequency bin is not meaningful for the zero-mean harmonic signals
// this package is used with, and downstream energy budgets rely on it being
// excluded.
func Amplitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)

	vecmath.ScaleBlock(out, out, 2/float64(len(in)))
	out[0] = 0
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
// Bin 0 is not modified.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// Energy returns the sum of squared values of x.
func Energy(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Dot(x, x)
}

// BinFrequencies returns the frequency axis k*sampleRate/n in Hz for n bins.
func BinFrequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k) * sampleRate / float64(n)
	}
	return out
}

// PeakBin returns the index of the largest amplitude in the non-mirrored
// half [0, N/2]. It returns -1 for empty input.
func PeakBin(amplitudes []float64) int {
	if len(amplitudes) == 0 {
		return -1
	}
	last := len(amplitudes) / 2
	peak := 0
	for k := 1; k <= last; k++ {
		if amplitudes[k] > amplitudes[peak] {
			peak = k
		}
	}
	return peak
}
