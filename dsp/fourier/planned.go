package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Planned is an engine backed by algo-fft plans. One plan is created per
// transform length and reused for later calls of the same length.
//
// Planned is not safe for concurrent use.
type Planned struct {
	plans map[int]*algofft.Plan[complex128]
}

// NewPlanned creates an empty plan cache.
func NewPlanned() *Planned {
	return &Planned{plans: make(map[int]*algofft.Plan[complex128])}
}

func (p *Planned) plan(n int) (*algofft.Plan[complex128], error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	if plan, ok := p.plans[n]; ok {
		return plan, nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fourier: create fft plan of size %d: %w", n, err)
	}
	p.plans[n] = plan
	return plan, nil
}

// Forward computes the unnormalized forward DFT of in.
func (p *Planned) Forward(in []complex128) ([]complex128, error) {
	plan, err := p.plan(len(in))
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(in))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fourier: forward fft: %w", err)
	}
	return out, nil
}

// Inverse computes the normalized inverse DFT of in.
func (p *Planned) Inverse(in []complex128) ([]complex128, error) {
	plan, err := p.plan(len(in))
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(in))
	if err := plan.Inverse(out, in); err != nil {
		return nil, fmt.Errorf("fourier: inverse fft: %w", err)
	}
	return out, nil
}
