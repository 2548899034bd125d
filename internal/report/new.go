package report

import (
	"context"
	"time"

	"github.com/theraaajj/voxguard/internal/config"
	"github.com/theraaajj/voxguard/internal/logger"
)

type implSynthesizer struct {
	cfg       config.ReportConfig
	generator Generator
	logger    logger.Logger
	sleep     func(ctx context.Context, d time.Duration)
}

// New creates a Synthesizer driving the given Generator with the adaptive
// single-shot / map-reduce strategy.
func New(cfg config.ReportConfig, gen Generator, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		cfg:       cfg,
		generator: gen,
		logger:    log,
		sleep:     sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
