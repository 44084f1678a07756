package panel

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// field is one editable row of the panel.
type field struct {
	label  string
	format func(denoise.Config) string
	// adjust applies one step in direction dir (+1 or -1) before clamping.
	adjust func(c *denoise.Config, dir int)
}

func harmonicFields(i int) []field {
	name := fmt.Sprintf("h%d", i+1)
	return []field{
		{
			label:  name + " amplitude",
			format: func(c denoise.Config) string { return fmt.Sprintf("%.1f", c.Harmonics[i].Amplitude) },
			adjust: func(c *denoise.Config, dir int) { c.Harmonics[i].Amplitude += float64(dir) },
		},
		{
			label:  name + " frequency",
			format: func(c denoise.Config) string { return fmt.Sprintf("%.1f Hz", c.Harmonics[i].Frequency) },
			adjust: func(c *denoise.Config, dir int) { c.Harmonics[i].Frequency += float64(dir) },
		},
		{
			label:  name + " phase",
			format: func(c denoise.Config) string { return fmt.Sprintf("%.1f rad", c.Harmonics[i].Phase) },
			adjust: func(c *denoise.Config, dir int) { c.Harmonics[i].Phase += 0.1 * float64(dir) },
		},
	}
}

func defaultFields() []field {
	var fields []field
	for i := range denoise.HarmonicCount {
		fields = append(fields, harmonicFields(i)...)
	}
	return append(fields,
		field{
			label:  "sample rate",
			format: func(c denoise.Config) string { return fmt.Sprintf("%d Hz", c.SampleRate) },
			adjust: func(c *denoise.Config, dir int) { c.SampleRate += 100 * dir },
		},
		field{
			label:  "points",
			format: func(c denoise.Config) string { return fmt.Sprintf("%d", c.PointCount) },
			// Any move away from the current count is stepped to the next
			// power of two by Config.Clamp.
			adjust: func(c *denoise.Config, dir int) { c.PointCount += dir },
		},
		field{
			label:  "noise alpha",
			format: func(c denoise.Config) string { return fmt.Sprintf("%.2f", c.NoiseAlpha) },
			adjust: func(c *denoise.Config, dir int) { c.NoiseAlpha += 0.05 * float64(dir) },
		},
		field{
			label:  "gamma",
			format: func(c denoise.Config) string { return fmt.Sprintf("%.2f", c.Gamma) },
			adjust: func(c *denoise.Config, dir int) { c.Gamma += 0.05 * float64(dir) },
		},
		field{
			label:  "show noise",
			format: func(c denoise.Config) string { return fmt.Sprintf("%v", c.ShowNoise) },
			adjust: func(c *denoise.Config, _ int) { c.ShowNoise = !c.ShowNoise },
		},
	)
}
