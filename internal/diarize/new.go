package diarize

import (
	"github.com/theraaajj/voxguard/internal/config"
	"github.com/theraaajj/voxguard/internal/logger"
	"github.com/theraaajj/voxguard/pkg/executor"
)

type implDiarizer struct {
	cfg      config.DiarizeConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Diarizer that shells out to an external diarization command
// emitting RTTM on stdout. An empty command configures permanent degraded
// mode: Diarize returns a nil timeline without error.
func New(cfg config.DiarizeConfig, exec executor.Executor, log logger.Logger) Diarizer {
	return &implDiarizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
