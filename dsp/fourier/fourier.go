package fourier

import (
	"math"
	"math/cmplx"
	"sync"
)

// minParallelSize is the smallest half-transform worth handing to a goroutine.
const minParallelSize = 256

var serial = NewRecursive()

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n. For n <= 1 it returns 1.
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PadToPowerOf2 returns a copy of in extended with zeros to the next power of
// two length.
func PadToPowerOf2(in []complex128) []complex128 {
	out := make([]complex128, NextPowerOf2(len(in)))
	copy(out, in)
	return out
}

// Transform computes the forward DFT of in using the recursive radix-2
// algorithm. The input is zero-padded to the next power of two, so the output
// may be longer than the input.
func Transform(in []complex128) ([]complex128, error) {
	if len(in) == 0 {
		return nil, ErrEmptyInput
	}
	return radix2(PadToPowerOf2(in), 0), nil
}

// Inverse computes the inverse DFT of in as conj(FFT(conj(x)))/N.
//
// in must be a power-of-two length, which is always the case for the output
// of [Transform].
func Inverse(in []complex128) ([]complex128, error) {
	return serial.Inverse(in)
}

// TransformReal lifts real samples to complex values with zero imaginary
// part and calls [Transform].
func TransformReal(in []float64) ([]complex128, error) {
	if len(in) == 0 {
		return nil, ErrEmptyInput
	}
	lifted := make([]complex128, len(in))
	for i, v := range in {
		lifted[i] = complex(v, 0)
	}
	return Transform(lifted)
}

// radix2 transforms x, whose length must be a power of two. The top `fork`
// recursion levels evaluate the even and odd halves concurrently.
func radix2(x []complex128, fork int) []complex128 {
	n := len(x)
	if n == 1 {
		return []complex128{x[0]}
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := range half {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	var evenF, oddF []complex128
	if fork > 0 && half >= minParallelSize {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			evenF = radix2(even, fork-1)
		}()
		oddF = radix2(odd, fork-1)
		wg.Wait()
	} else {
		evenF = radix2(even, 0)
		oddF = radix2(odd, 0)
	}

	out := make([]complex128, n)
	for k := range half {
		t := cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n)) * oddF[k]
		out[k] = evenF[k] + t
		out[k+half] = evenF[k] - t
	}
	return out
}

func conjugate(in []complex128) []complex128 {
	out := make([]complex128, len(in))
	for i, c := range in {
		out[i] = cmplx.Conj(c)
	}
	return out
}
