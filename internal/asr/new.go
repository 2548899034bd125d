package asr

import (
	"github.com/theraaajj/voxguard/internal/config"
	"github.com/theraaajj/voxguard/internal/logger"
	"github.com/theraaajj/voxguard/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by an external whisper binary.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
