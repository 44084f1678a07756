// Command denoise synthesizes a noisy multi-harmonic signal, removes noise
// with an energy-budget spectral filter and reports the reconstruction error.
//
// Usage:
//
//	denoise [flags]
//
// Examples:
//
//	denoise
//	denoise -alpha 0.5 -gamma 0.6
//	denoise -h1 10,10 -h2 3,50,0.5 -points 4096 -rate 4096
//	denoise -engine planned -v -log denoise.log
//	denoise -tui
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/algo-denoise/dsp/denoise"
	"github.com/cwbudde/algo-denoise/dsp/fourier"
	"github.com/cwbudde/algo-denoise/internal/panel"
	"go.uber.org/zap"
)

func main() {
	cfg := denoise.DefaultConfig()

	flag.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "sample rate in Hz")
	flag.IntVar(&cfg.PointCount, "points", cfg.PointCount, "number of samples, a power of two >= 1024")
	flag.Float64Var(&cfg.NoiseAlpha, "alpha", cfg.NoiseAlpha, "noise to signal energy ratio")
	flag.Float64Var(&cfg.Gamma, "gamma", cfg.Gamma, "retained energy ratio of the spectral filter, 0..1")
	flag.BoolVar(&cfg.ShowNoise, "show-noise", cfg.ShowNoise, "show the noisy input in the panel")
	for i := range cfg.Harmonics {
		name := fmt.Sprintf("h%d", i+1)
		flag.Var(harmonicFlag{&cfg.Harmonics[i]}, name, "harmonic "+name[1:]+" as amplitude,frequency[,phase]")
	}
	engineName := flag.String("engine", fourier.EngineRecursive, "transform engine: "+strings.Join(fourier.EngineNames(), ", "))
	seed := flag.Int64("seed", 1, "noise seed")
	verbose := flag.Bool("v", false, "log every recompute")
	logPath := flag.String("log", "", "log file (default stderr, discarded with -tui)")
	tui := flag.Bool("tui", false, "run the interactive panel")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: denoise [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Removes noise from a synthetic multi-harmonic signal and reports the error.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  denoise -alpha 0.5 -gamma 0.6\n")
		fmt.Fprintf(os.Stderr, "  denoise -h1 10,10 -h2 3,50,0.5 -points 4096 -rate 4096\n")
		fmt.Fprintf(os.Stderr, "  denoise -tui\n")
	}
	flag.Parse()

	logger := zap.NewNop()
	if path := *logPath; path != "" || !*tui {
		if path == "" {
			path = "stderr"
		}
		l, err := newLogger(path, *verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()
	logCPU(logger)

	engine, err := fourier.NewEngine(*engineName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	p, err := denoise.New(
		denoise.WithConfig(cfg),
		denoise.WithSeed(*seed),
		denoise.WithEngine(engine),
		denoise.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logger.Info("pipeline ready",
		zap.String("engine", *engineName),
		zap.Int64("seed", *seed),
		zap.Int("points", cfg.PointCount),
	)

	if *tui {
		if _, err := tea.NewProgram(panel.New(p), tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printReport(os.Stdout, p); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write report: %v\n", err)
		os.Exit(1)
	}
}
