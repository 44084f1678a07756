package frequency_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/stats/frequency"
)

func ExampleCalculate() {
	amps := make([]float64, 16)
	amps[2], amps[14] = 1, 1
	s := frequency.Calculate(amps, 1600)
	fmt.Printf("centroid=%.0f Hz rolloff=%.0f Hz\n", s.Centroid, s.Rolloff)
	// Output:
	// centroid=200 Hz rolloff=200 Hz
}
