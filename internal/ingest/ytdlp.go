package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theraaajj/voxguard/internal/logger"
	"github.com/theraaajj/voxguard/pkg/executor"
)

type implDownloader struct {
	dataDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader shelling out to yt-dlp, writing wav files into
// dataDir named by video ID.
func New(dataDir string, exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		dataDir:  dataDir,
		executor: exec,
		logger:   log,
	}
}

// Download fetches the best audio stream, converts it to 16 kHz mono wav,
// and returns the artifact path with the video's real ID and title. The ID
// comes from the downloader's metadata, never from the caller's URL text.
func (d *implDownloader) Download(ctx context.Context, url string) (*Video, error) {
	d.logger.Info(ctx, "Downloading audio: %s", url)

	args := []string{
		"-x",
		"--audio-format", "wav",
		"--postprocessor-args", "ffmpeg:-ar 16000 -ac 1",
		"-o", filepath.Join(d.dataDir, "%(id)s.%(ext)s"),
		"--no-simulate",
		"--print", "id",
		"--print", "title",
		"--no-warnings",
		url,
	}

	out, err := d.executor.Execute(ctx, "yt-dlp", args...)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp download: %w", err)
	}

	video, err := parseMetadata(out, d.dataDir)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp metadata: %w", err)
	}

	d.logger.Info(ctx, "Download complete: %s (%s)", video.Title, video.ID)
	return video, nil
}

// parseMetadata reads the two --print lines (id, then title) yt-dlp emits.
func parseMetadata(output, dataDir string) (*Video, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("expected id and title lines, got %d lines", len(lines))
	}

	id := strings.TrimSpace(lines[0])
	title := strings.TrimSpace(lines[1])

	return &Video{
		AudioPath: filepath.Join(dataDir, id+".wav"),
		Title:     title,
		ID:        id,
	}, nil
}

// VideoIDFromURL extracts a best-effort ID from a watch URL. Only for log
// lines before download resolves the real identity; never used for dedup.
func VideoIDFromURL(url string) string {
	if i := strings.Index(url, "v="); i != -1 {
		id := url[i+2:]
		if j := strings.IndexByte(id, '&'); j != -1 {
			id = id[:j]
		}
		return id
	}
	return "unknown_id"
}
