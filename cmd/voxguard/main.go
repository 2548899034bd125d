package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/theraaajj/voxguard/internal/asr"
	"github.com/theraaajj/voxguard/internal/config"
	"github.com/theraaajj/voxguard/internal/diarize"
	"github.com/theraaajj/voxguard/internal/ingest"
	"github.com/theraaajj/voxguard/internal/logger"
	"github.com/theraaajj/voxguard/internal/memory"
	"github.com/theraaajj/voxguard/internal/notify"
	"github.com/theraaajj/voxguard/internal/pipeline"
	"github.com/theraaajj/voxguard/internal/report"
	"github.com/theraaajj/voxguard/internal/vector"
	"github.com/theraaajj/voxguard/internal/watcher"
	"github.com/theraaajj/voxguard/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	url := flag.String("url", "", "analyze a single video URL and exit")
	watch := flag.Bool("watch", false, "monitor the inbox directory for dropped recordings")
	query := flag.String("query", "", "ask a question against processed videos and exit")
	recent := flag.Int("recent", 0, "list the N most recently processed videos and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "VoxGuard Audio Intelligence Pipeline")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	app, err := buildApp(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize: %v", err)
		os.Exit(1)
	}

	switch {
	case *url != "":
		if err := app.runOnce(ctx, cfg, *url); err != nil {
			log.Error(ctx, "Pipeline failed: %v", err)
			os.Exit(1)
		}
	case *query != "":
		if err := app.runQuery(ctx, *query); err != nil {
			log.Error(ctx, "Query failed: %v", err)
			os.Exit(1)
		}
	case *recent > 0:
		if err := app.runRecent(*recent); err != nil {
			log.Error(ctx, "Listing failed: %v", err)
			os.Exit(1)
		}
	case *watch:
		if err := app.runWatch(ctx, cfg, log); err != nil {
			log.Error(ctx, "Watcher failed: %v", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// app holds the wired collaborators shared by the run modes.
type app struct {
	log         logger.Logger
	controller  pipeline.Controller
	localCtrl   pipeline.Controller
	synthesizer report.Synthesizer
	store       memory.Store
	index       vector.Index
}

func buildApp(cfg *config.Config, log logger.Logger) (*app, error) {
	exec := executor.New()

	store, err := memory.New(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open memory store: %w", err)
	}

	embedder := vector.NewGeminiEmbedder(cfg.Gemini.APIKeys[0], cfg.Gemini.EmbedModel)
	index, err := vector.New(cfg.Storage.VectorIndexPath, embedder, log)
	if err != nil {
		return nil, fmt.Errorf("open vector index: %w", err)
	}

	generator := report.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	synthesizer := report.New(cfg.Report, generator, log)

	transcriber := asr.New(cfg.Whisper, exec, log)
	diarizer := diarize.New(cfg.Diarize, exec, log)
	notifier := notify.New(cfg.SMTP, log)

	downloader := ingest.New(cfg.Paths.Data, exec, log)
	local := ingest.NewLocal(cfg.Paths.Data, log)

	return &app{
		log:         log,
		controller:  pipeline.New(cfg.Analysis, downloader, transcriber, diarizer, synthesizer, store, index, notifier, log),
		localCtrl:   pipeline.New(cfg.Analysis, local, transcriber, diarizer, synthesizer, store, index, notifier, log),
		synthesizer: synthesizer,
		store:       store,
		index:       index,
	}, nil
}

// runOnce analyzes one video and exports the report as a docx.
func (a *app) runOnce(ctx context.Context, cfg *config.Config, url string) error {
	res, err := a.controller.Run(ctx, url)
	if err != nil {
		return err
	}
	if res.State == pipeline.StateSkipped {
		a.log.Info(ctx, "Video %s already processed, nothing to do", res.VideoID)
		return nil
	}
	return a.exportReport(ctx, cfg, res)
}

// runWatch feeds dropped recordings into the pipeline until interrupted.
func (a *app) runWatch(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	handler := func(ctx context.Context, filePath string) error {
		res, err := a.localCtrl.Run(ctx, filePath)
		if err != nil {
			return err
		}
		if res.State == pipeline.StateDone {
			return a.exportReport(ctx, cfg, res)
		}
		return nil
	}

	w, err := watcher.New(cfg.Watch.Input, handler, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring inbox: %s", cfg.Watch.Input)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	return nil
}

// runQuery retrieves the most relevant transcript excerpts and has the
// model answer from them alone.
func (a *app) runQuery(ctx context.Context, query string) error {
	hits, err := a.index.Query(ctx, query, 5)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("No processed videos match this question yet.")
		return nil
	}

	excerpts := make([]string, 0, len(hits))
	for _, h := range hits {
		flag := ""
		if h.Flagged {
			flag = " [LOW TRUST]"
		}
		excerpts = append(excerpts, fmt.Sprintf("From %q at %.1fs%s: %s", h.Title, h.Start, flag, h.Text))
	}

	answer, err := a.synthesizer.Answer(ctx, query, excerpts)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

func (a *app) runRecent(limit int) error {
	records, err := a.store.Recent(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No videos processed yet.")
		return nil
	}
	for _, r := range records {
		status := "ok"
		if r.IsFlagged {
			status = "FLAGGED"
		}
		fmt.Printf("%s  %-40s  avg=%.2f  low=%.2f  %s\n",
			r.ProcessedAt.Format("2006-01-02 15:04"), r.Title, r.AvgConfidence, r.LowestConfidence, status)
	}
	return nil
}

func (a *app) exportReport(ctx context.Context, cfg *config.Config, res *pipeline.Result) error {
	out := filepath.Join(cfg.Paths.Reports, res.VideoID+".docx")
	if err := report.WriteDocx(res.Title, res.Report, out); err != nil {
		return fmt.Errorf("export report: %w", err)
	}
	a.log.Info(ctx, "Report exported: %s", out)
	return nil
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Data,
		cfg.Paths.Reports,
		cfg.Watch.Input,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
