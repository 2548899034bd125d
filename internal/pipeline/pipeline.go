package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/theraaajj/voxguard/internal/audio"
	"github.com/theraaajj/voxguard/internal/fusion"
	"github.com/theraaajj/voxguard/internal/ingest"
	"github.com/theraaajj/voxguard/internal/memory"
)

// Run processes one video end to end: ingest, dedup check, fusion analysis,
// report synthesis, persistence, vectorization, cleanup, notification.
// Download and analysis failures are fatal to the request; persistence,
// vectorization, and notification failures degrade but never abort it.
func (c *implController) Run(ctx context.Context, url string) (*Result, error) {
	startTime := time.Now()
	res := &Result{State: StateIngesting, URL: url}

	c.logger.Info(ctx, "========================================")
	c.logger.Info(ctx, "Pipeline activated for URL containing: %s", ingest.VideoIDFromURL(url))
	c.logger.Info(ctx, "========================================")

	video, err := c.downloader.Download(ctx, url)
	if err != nil {
		res.State = StateFailed
		return res, fmt.Errorf("ingestion: %w", err)
	}
	res.VideoID = video.ID
	res.Title = video.Title

	// Dedup runs against the identity the downloader resolved, not the raw
	// URL, so mirrors and tracking-parameter variants of the same video all
	// collapse to one record.
	res.State = StateCheckingMemory
	exists, err := c.store.Exists(video.ID)
	if err != nil {
		c.logger.Warn(ctx, "Memory check failed, proceeding as new video: %v", err)
	}
	if exists {
		c.logger.Info(ctx, "Already processed %q, skipping", video.Title)
		c.removeArtifact(ctx, video.AudioPath)
		res.State = StateSkipped
		return res, nil
	}

	// From here the artifact is cleaned exactly once on every terminal
	// path, including analysis and synthesis failures.
	cleaned := false
	cleanup := func() {
		if cleaned {
			return
		}
		cleaned = true
		c.removeArtifact(ctx, video.AudioPath)
	}
	defer cleanup()

	res.State = StateAnalyzing
	segments, err := c.analyze(ctx, video.AudioPath)
	if err != nil {
		res.State = StateFailed
		return res, fmt.Errorf("analysis: %w", err)
	}

	res.State = StateSynthesizing
	reportText, err := c.synthesizer.Synthesize(ctx, video.Title, segments)
	if err != nil {
		res.State = StateFailed
		return res, fmt.Errorf("synthesis: %w", err)
	}
	res.Report = reportText
	res.SuspiciousCount = fusion.SuspiciousCount(segments)

	res.State = StatePersisting
	record := &memory.VideoMemory{
		ID:               video.ID,
		Title:            video.Title,
		URL:              url,
		Transcript:       fusion.JoinText(segments),
		Report:           reportText,
		AvgConfidence:    fusion.AvgConfidence(segments),
		LowestConfidence: fusion.LowestConfidence(segments),
		IsFlagged:        fusion.AnyFlagged(segments),
	}
	if err := c.store.Save(record); err != nil {
		// The in-memory report survives; notification still goes out.
		c.logger.Error(ctx, "Persistence failed for %s: %v", video.ID, err)
	}

	res.State = StateVectorizing
	if err := c.index.Upsert(ctx, video.ID, video.Title, segments); err != nil {
		c.logger.Error(ctx, "Vector indexing failed for %s: %v", video.ID, err)
	}

	res.State = StateCleaningUp
	cleanup()

	res.State = StateNotifying
	subject := fmt.Sprintf("VoxGuard Intel: %s", video.Title)
	if err := c.notifier.Send(ctx, subject, reportText, video.Title, url); err != nil {
		c.logger.Warn(ctx, "Notification failed: %v", err)
	}

	res.State = StateDone
	c.logger.Info(ctx, "Pipeline completed for %s in %s (%d suspicious segments)",
		video.ID, time.Since(startTime), res.SuspiciousCount)
	return res, nil
}

// analyze runs the signal, identity, and content layers over the artifact
// and fuses them into verified segments.
func (c *implController) analyze(ctx context.Context, audioPath string) ([]fusion.VerifiedSegment, error) {
	c.logger.Info(ctx, "Loading audio for signal analysis: %s", audioPath)
	samples, sampleRate, err := audio.LoadWAV(audioPath)
	if err != nil {
		return nil, fmt.Errorf("load waveform: %w", err)
	}
	noise := audio.RMSProfile(samples, c.cfg.FrameStride)

	// Diarization is recoverable: failure means unknown speakers, not a
	// failed request.
	timeline, err := c.diarizer.Diarize(ctx, audioPath)
	if err != nil {
		c.logger.Warn(ctx, "Diarization degraded: %v", err)
		timeline = nil
	}

	result, err := c.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	opts := fusion.Options{
		TrustThreshold: c.cfg.TrustThreshold,
		NoiseCap:       c.cfg.NoiseCap,
	}
	segments := fusion.Fuse(result.Segments, timeline, noise, c.cfg.FrameStride, sampleRate, opts)
	c.logger.Info(ctx, "Fused %d verified segments (%d suspicious)",
		len(segments), fusion.SuspiciousCount(segments))
	return segments, nil
}

func (c *implController) removeArtifact(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		c.logger.Warn(ctx, "Failed to remove audio artifact %s: %v", path, err)
		return
	}
	c.logger.Info(ctx, "Cleanup: deleted audio artifact %s", path)
}
