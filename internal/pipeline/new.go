package pipeline

import (
	"github.com/theraaajj/voxguard/internal/asr"
	"github.com/theraaajj/voxguard/internal/config"
	"github.com/theraaajj/voxguard/internal/diarize"
	"github.com/theraaajj/voxguard/internal/ingest"
	"github.com/theraaajj/voxguard/internal/logger"
	"github.com/theraaajj/voxguard/internal/memory"
	"github.com/theraaajj/voxguard/internal/notify"
	"github.com/theraaajj/voxguard/internal/report"
	"github.com/theraaajj/voxguard/internal/vector"
)

type implController struct {
	cfg         config.AnalysisConfig
	downloader  ingest.Downloader
	transcriber asr.Transcriber
	diarizer    diarize.Diarizer
	synthesizer report.Synthesizer
	store       memory.Store
	index       vector.Index
	notifier    notify.Notifier
	logger      logger.Logger
}

// New wires the pipeline controller from explicitly constructed
// collaborators. Lifecycle of every handle belongs to the caller.
func New(
	cfg config.AnalysisConfig,
	dl ingest.Downloader,
	tr asr.Transcriber,
	di diarize.Diarizer,
	syn report.Synthesizer,
	store memory.Store,
	index vector.Index,
	not notify.Notifier,
	log logger.Logger,
) Controller {
	return &implController{
		cfg:         cfg,
		downloader:  dl,
		transcriber: tr,
		diarizer:    di,
		synthesizer: syn,
		store:       store,
		index:       index,
		notifier:    not,
		logger:      log,
	}
}
