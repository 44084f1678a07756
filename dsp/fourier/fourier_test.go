package fourier

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-denoise/internal/testutil"
	dspfft "github.com/mjibson/go-dsp/fft"
)

func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range n {
		var sum complex128
		for j := range n {
			sum += x[j] * cmplx.Rect(1, -2*math.Pi*float64(k*j)/float64(n))
		}
		out[k] = sum
	}
	return out
}

func TestPowerOf2Helpers(t *testing.T) {
	tests := []struct {
		n       int
		isPow2  bool
		nextPow int
	}{
		{0, false, 1},
		{1, true, 1},
		{2, true, 2},
		{3, false, 4},
		{5, false, 8},
		{1024, true, 1024},
		{1025, false, 2048},
	}
	for _, tt := range tests {
		if got := IsPowerOf2(tt.n); got != tt.isPow2 {
			t.Fatalf("IsPowerOf2(%d) = %v, want %v", tt.n, got, tt.isPow2)
		}
		if got := NextPowerOf2(tt.n); got != tt.nextPow {
			t.Fatalf("NextPowerOf2(%d) = %d, want %d", tt.n, got, tt.nextPow)
		}
	}
}

func TestTransformImpulse(t *testing.T) {
	x := testutil.Lift(testutil.Impulse(8, 0))
	got, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	for k, v := range got {
		if cmplx.Abs(v-1) > 1e-15 {
			t.Fatalf("bin %d = %v, want 1", k, v)
		}
	}
}

func TestTransformMatchesNaiveDFT(t *testing.T) {
	x := testutil.DeterministicComplex(3, 1, 32)
	got, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, got, naiveDFT(x), 1e-12)
}

func TestTransformPadsToPowerOf2(t *testing.T) {
	x := []complex128{1, 2, 3, 4, 5}
	got, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	testutil.RequireComplexNearlyEqual(t, got, naiveDFT(PadToPowerOf2(x)), 1e-12)
	if len(x) != 5 || x[4] != 5 {
		t.Fatalf("input modified: %v", x)
	}
}

func TestTransformSingleSample(t *testing.T) {
	got, err := Transform([]complex128{3 - 2i})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if len(got) != 1 || got[0] != 3-2i {
		t.Fatalf("Transform = %v, want [3-2i]", got)
	}
}

func TestTransformRejectsEmpty(t *testing.T) {
	if _, err := Transform(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Transform(nil) error = %v, want ErrEmptyInput", err)
	}
	if _, err := TransformReal([]float64{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("TransformReal(empty) error = %v, want ErrEmptyInput", err)
	}
	if _, err := Inverse(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Inverse(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestInverseRejectsNonPowerOfTwo(t *testing.T) {
	_, err := Inverse(make([]complex128, 6))
	if !errors.Is(err, ErrNotPowerOfTwo) {
		t.Fatalf("Inverse() error = %v, want ErrNotPowerOfTwo", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 64, 1024, 4096} {
		x := testutil.DeterministicComplex(int64(n), 5, n)
		spec, err := Transform(x)
		if err != nil {
			t.Fatalf("n=%d Transform() error = %v", n, err)
		}
		back, err := Inverse(spec)
		if err != nil {
			t.Fatalf("n=%d Inverse() error = %v", n, err)
		}
		testutil.RequireComplexNearlyEqual(t, back, x, 1e-9)
	}
}

func TestTransformRealSine(t *testing.T) {
	const n = 64
	x := testutil.DeterministicSine(4, n, 1, n)
	got, err := TransformReal(x)
	if err != nil {
		t.Fatalf("TransformReal() error = %v", err)
	}
	// A unit sine at bin 4 puts N/2 magnitude into bins 4 and N-4.
	for k, v := range got {
		want := 0.0
		if k == 4 || k == n-4 {
			want = n / 2
		}
		if math.Abs(cmplx.Abs(v)-want) > 1e-9 {
			t.Fatalf("|X[%d]| = %v, want %v", k, cmplx.Abs(v), want)
		}
	}
	if imag(got[4]) > -n/2+1e-9 {
		t.Fatalf("X[4] = %v, want -i*N/2", got[4])
	}
}

func TestTransformMatchesGoDSP(t *testing.T) {
	x := testutil.DeterministicComplex(11, 1, 256)
	got, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, got, dspfft.FFT(x), 1e-10)

	back, err := Inverse(got)
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, back, dspfft.IFFT(got), 1e-10)
}

func TestParsevalEnergy(t *testing.T) {
	const n = 512
	x := testutil.DeterministicComplex(5, 1, n)
	spec, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	timeEnergy := testutil.Energy(x)
	freqEnergy := testutil.Energy(spec)
	if math.Abs(freqEnergy/float64(n)-timeEnergy) > 1e-9*timeEnergy {
		t.Fatalf("Parseval: sum|X|^2/N = %v, sum|x|^2 = %v", freqEnergy/n, timeEnergy)
	}
}
