package budget

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-denoise/dsp/spectrum"
)

// Band describes the zeroed region chosen by [Plan].
//
// Bins Lo..Hi (inclusive) are zeroed. The band is symmetric around the
// spectrum midpoint, Lo+Hi == Len-1, and is empty when Lo > Hi.
type Band struct {
	Len       int // spectrum length N
	HalfWidth int // retained half-bandwidth k; Len when the scan never reached the target
	Lo        int
	Hi        int
}

// Empty reports whether no bin is zeroed.
func (b Band) Empty() bool {
	return b.Lo > b.Hi
}

// Zeroed returns the number of zeroed bins.
func (b Band) Zeroed() int {
	if b.Empty() {
		return 0
	}
	return b.Hi - b.Lo + 1
}

// Contains reports whether bin i is zeroed.
func (b Band) Contains(i int) bool {
	return i >= b.Lo && i <= b.Hi
}

func emptyBand(n, k int) Band {
	return Band{Len: n, HalfWidth: k, Lo: n, Hi: n - 1}
}

// Plan computes the zeroed band for amplitudes and retention ratio.
//
// The scan accumulates a[k]^2 + a[N-1-k]^2 for k = 0, 1, ... and stops at the
// first k whose running sum exceeds ratio*sum(a^2). Bins k+1..N-k-2 are then
// zeroed. If the running sum never exceeds the target, or ratio >= 1, nothing
// is zeroed.
func Plan(amplitudes []float64, ratio float64) (Band, error) {
	n := len(amplitudes)
	if n == 0 {
		return Band{}, ErrEmptyInput
	}
	if math.IsNaN(ratio) || ratio < 0 {
		return Band{}, fmt.Errorf("%w: %f", ErrInvalidRatio, ratio)
	}

	target := spectrum.Energy(amplitudes) * ratio
	accumulated := 0.0
	k := 0
	for ; k < n; k++ {
		lo := amplitudes[k]
		hi := amplitudes[n-1-k]
		accumulated += lo*lo + hi*hi
		if accumulated > target {
			break
		}
	}

	// The pairwise scan covers every bin once by k = N/2-1, so at ratio >= 1
	// the break can only land on or past the midpoint. Rounding in the two
	// summation orders must not turn that into a cut.
	if k == n || ratio >= 1 {
		return emptyBand(n, k), nil
	}

	band := Band{Len: n, HalfWidth: k, Lo: k + 1, Hi: n - k - 2}
	if band.Empty() {
		return emptyBand(n, k), nil
	}
	return band, nil
}

// Apply returns a copy of spec with the band chosen by [Plan] zeroed.
func Apply(spec []complex128, amplitudes []float64, ratio float64) ([]complex128, Band, error) {
	if len(spec) != len(amplitudes) {
		return nil, Band{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(spec), len(amplitudes))
	}

	band, err := Plan(amplitudes, ratio)
	if err != nil {
		return nil, Band{}, err
	}

	out := make([]complex128, len(spec))
	copy(out, spec)
	for i := band.Lo; i <= band.Hi; i++ {
		out[i] = 0
	}
	return out, band, nil
}
