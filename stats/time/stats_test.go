package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func TestCalculateSine(t *testing.T) {
	// 4 full periods of an amplitude 2 sine, 64 samples per period.
	x := testutil.DeterministicSine(1, 64, 2, 256)
	s := Calculate(x)

	if s.Length != 256 {
		t.Fatalf("Length = %d, want 256", s.Length)
	}
	if math.Abs(s.DC) > 1e-12 {
		t.Fatalf("DC = %v, want 0", s.DC)
	}
	if want := 2 / math.Sqrt2; math.Abs(s.RMS-want) > 1e-12 {
		t.Fatalf("RMS = %v, want %v", s.RMS, want)
	}
	if math.Abs(s.Peak-2) > 1e-12 {
		t.Fatalf("Peak = %v, want 2", s.Peak)
	}
	if math.Abs(s.CrestFactor-math.Sqrt2) > 1e-12 {
		t.Fatalf("CrestFactor = %v, want sqrt(2)", s.CrestFactor)
	}
	if math.Abs(s.CrestFactor_dB-20*math.Log10(math.Sqrt2)) > 1e-9 {
		t.Fatalf("CrestFactor_dB = %v", s.CrestFactor_dB)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.RMS != 0 || !math.IsInf(s.RMS_dB, -1) {
		t.Fatalf("Calculate(nil) = %+v", s)
	}
}

func TestCalculateSilence(t *testing.T) {
	s := Calculate(make([]float64, 16))
	if s.CrestFactor != 0 || s.ZeroCrossings != 0 {
		t.Fatalf("Calculate(silence) = %+v", s)
	}
}

func TestPeakNegative(t *testing.T) {
	if got := Peak([]float64{0.5, -3, 1}); got != 3 {
		t.Fatalf("Peak() = %v, want 3", got)
	}
}

func TestZeroCrossings(t *testing.T) {
	tests := []struct {
		in   []float64
		want int
	}{
		{nil, 0},
		{[]float64{1, -1, 1, -1}, 3},
		{[]float64{1, 0, -1}, 1},
		{[]float64{1, 0, 1}, 0},
		{[]float64{0, 0, -1, 2}, 1},
	}
	for _, tt := range tests {
		if got := ZeroCrossings(tt.in); got != tt.want {
			t.Fatalf("ZeroCrossings(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, -3, 3, -3}); got != 3 {
		t.Fatalf("RMS() = %v, want 3", got)
	}
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %v", got)
	}
}
