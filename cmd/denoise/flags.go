package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-denoise/dsp/signal"
)

// harmonicFlag parses "amplitude,frequency[,phase]" into a harmonic.
type harmonicFlag struct {
	h *signal.Harmonic
}

func (f harmonicFlag) String() string {
	if f.h == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.h.Amplitude, f.h.Frequency, f.h.Phase)
}

func (f harmonicFlag) Set(s string) error {
	h, err := parseHarmonic(s)
	if err != nil {
		return err
	}
	*f.h = h
	return nil
}

func parseHarmonic(s string) (signal.Harmonic, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return signal.Harmonic{}, fmt.Errorf("harmonic must be A,F[,P]: %q", s)
	}

	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return signal.Harmonic{}, fmt.Errorf("harmonic field %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return signal.Harmonic{Amplitude: vals[0], Frequency: vals[1], Phase: vals[2]}, nil
}
