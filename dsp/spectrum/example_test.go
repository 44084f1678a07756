package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/spectrum"
)

func ExampleAmplitude() {
	bins := []complex128{8, 3 + 4i, 0, 4i}
	amp := spectrum.Amplitude(bins)
	fmt.Printf("%.1f %.1f %.1f %.1f\n", amp[0], amp[1], amp[2], amp[3])
	// Output:
	// 0.0 2.5 0.0 2.0
}

func ExampleBinFrequencies() {
	fmt.Println(spectrum.BinFrequencies(4, 1024))
	// Output:
	// [0 256 512 768]
}
