package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

func printReport(w io.Writer, p *denoise.Pipeline) error {
	cfg := p.Config()
	r := p.Report()
	s := p.Stats()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Points", fmt.Sprintf("%d", cfg.PointCount)},
		{"Sample rate [Hz]", fmt.Sprintf("%d", cfg.SampleRate)},
		{"Noise alpha", fmt.Sprintf("%.4f", cfg.NoiseAlpha)},
		{"Gamma", fmt.Sprintf("%.4f", cfg.Gamma)},
		{"Beta", fmt.Sprintf("%.6f", s.Beta)},
		{"Retained half-bandwidth [bins]", fmt.Sprintf("%d", r.RetainedHalfBandwidth)},
		{"Zeroed bins", fmt.Sprintf("%d", r.ZeroedBins)},
		{"Peak [Hz]", fmt.Sprintf("%.2f", r.PeakFrequency)},
		{"Input SNR [dB]", fmt.Sprintf("%.2f", r.InputSNRdB)},
		{"Output SNR [dB]", fmt.Sprintf("%.2f", r.OutputSNRdB)},
		{"RMS in/clean", fmt.Sprintf("%.4f / %.4f", r.InputLevels.RMS, r.CleanLevels.RMS)},
		{"Crest factor in/clean [dB]", fmt.Sprintf("%.2f / %.2f", r.InputLevels.CrestFactor_dB, r.CleanLevels.CrestFactor_dB)},
		{"Flatness in/clean", fmt.Sprintf("%.4f / %.4f", r.InputShape.Flatness, r.CleanShape.Flatness)},
		{"Centroid in/clean [Hz]", fmt.Sprintf("%.2f / %.2f", r.InputShape.Centroid, r.CleanShape.Centroid)},
	}
	if r.DeltaDefined {
		rows = append(rows, [2]string{"Delta", fmt.Sprintf("%.6g", r.Delta)})
	} else {
		rows = append(rows, [2]string{"Delta", "undefined"})
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
