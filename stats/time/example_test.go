package time_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/stats/time"
)

func ExampleCalculate() {
	s := time.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f peak=%.1f crossings=%d\n", s.RMS, s.Peak, s.ZeroCrossings)
	// Output:
	// rms=1.0 peak=1.0 crossings=3
}
