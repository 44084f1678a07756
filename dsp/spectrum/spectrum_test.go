package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/fourier"
	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
	if math.Abs(phase[1]-math.Atan2(-1, -1)) > 1e-12 {
		t.Fatalf("Phase[1]=%f mismatch", phase[1])
	}
}

func TestAmplitudeScaling(t *testing.T) {
	bins := []complex128{8, 3 + 4i, 0, 4i}
	amp := Amplitude(bins)
	want := []float64{0, 2.5, 0, 2}
	testutil.RequireSliceNearlyEqual(t, amp, want, 1e-12)
}

func TestAmplitudeForcesDCToZero(t *testing.T) {
	x := testutil.DC(3, 64)
	X, err := fourier.TransformReal(x)
	if err != nil {
		t.Fatalf("TransformReal() error = %v", err)
	}
	amp := Amplitude(X)
	if amp[0] != 0 {
		t.Fatalf("Amplitude[0] = %v, want exactly 0", amp[0])
	}
	for k := 1; k < len(amp); k++ {
		if amp[k] > 1e-12 {
			t.Fatalf("Amplitude[%d] = %v, want 0 for a constant signal", k, amp[k])
		}
	}
}

func TestAmplitudeOfSine(t *testing.T) {
	const n = 1024
	x := testutil.DeterministicSine(10, n, 10, n)
	X, err := fourier.TransformReal(x)
	if err != nil {
		t.Fatalf("TransformReal() error = %v", err)
	}
	amp := Amplitude(X)
	if math.Abs(amp[10]-10) > 1e-9 || math.Abs(amp[n-10]-10) > 1e-9 {
		t.Fatalf("Amplitude[10]=%v Amplitude[N-10]=%v, want 10", amp[10], amp[n-10])
	}
	if got := PeakBin(amp); got != 10 {
		t.Fatalf("PeakBin = %d, want 10", got)
	}
}

// The 2/N convention makes sum(amp^2) = 4/N^2 * (sum|X|^2 - |X0|^2), which for
// a zero-DC input equals 4/N * sum|x|^2 by Parseval.
func TestAmplitudeParsevalFactor(t *testing.T) {
	for _, n := range []int{64, 256, 2048} {
		x := testutil.DeterministicComplex(int64(n), 1, n)
		var mean complex128
		for _, v := range x {
			mean += v
		}
		mean /= complex(float64(n), 0)
		for i := range x {
			x[i] -= mean
		}

		X, err := fourier.Transform(x)
		if err != nil {
			t.Fatalf("Transform() error = %v", err)
		}
		got := Energy(Amplitude(X))
		want := 4 / float64(n) * testutil.Energy(x)
		if math.Abs(got-want) > 1e-9*want {
			t.Fatalf("n=%d: sum amp^2 = %v, want %v", n, got, want)
		}
	}
}

func TestEnergy(t *testing.T) {
	if got := Energy([]float64{1, -2, 3}); got != 14 {
		t.Fatalf("Energy = %v, want 14", got)
	}
	if got := Energy(nil); got != 0 {
		t.Fatalf("Energy(nil) = %v, want 0", got)
	}
}

func TestBinFrequencies(t *testing.T) {
	f := BinFrequencies(4, 1000)
	testutil.RequireSliceNearlyEqual(t, f, []float64{0, 250, 500, 750}, 0)
	if BinFrequencies(0, 1000) != nil {
		t.Fatal("expected nil for n=0")
	}
}

func TestPeakBinIgnoresMirror(t *testing.T) {
	amp := []float64{0, 1, 3, 2, 0, 9, 9, 9}
	if got := PeakBin(amp); got != 2 {
		t.Fatalf("PeakBin = %d, want 2", got)
	}
	if got := PeakBin(nil); got != -1 {
		t.Fatalf("PeakBin(nil) = %d, want -1", got)
	}
}

func TestEmptyInputs(t *testing.T) {
	if Amplitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil {
		t.Fatal("expected nil outputs for empty input")
	}
}
