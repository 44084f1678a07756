package main

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a JSON logger writing to path. Debug enables per-recompute
// events.
func newLogger(path string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func logCPU(logger *zap.Logger) {
	f := cpu.DetectFeatures()
	logger.Info("cpu features",
		zap.String("arch", f.Architecture),
		zap.Bool("sse2", f.HasSSE2),
		zap.Bool("avx", f.HasAVX),
		zap.Bool("avx2", f.HasAVX2),
		zap.Bool("neon", f.HasNEON),
		zap.Bool("force_generic", f.ForceGeneric),
	)
}
