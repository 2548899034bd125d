package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theraaajj/voxguard/internal/logger"
)

type implLocal struct {
	dataDir string
	logger  logger.Logger
}

// NewLocal creates a Downloader for files already on disk, used by the
// drop-directory watcher. The file is moved into dataDir so the pipeline
// owns and eventually cleans up the artifact, leaving the inbox empty.
func NewLocal(dataDir string, log logger.Logger) Downloader {
	return &implLocal{dataDir: dataDir, logger: log}
}

// Download treats url as a local path. Identity is the base filename, which
// is stable for repeated drops of the same file.
func (l *implLocal) Download(ctx context.Context, url string) (*Video, error) {
	if _, err := os.Stat(url); err != nil {
		return nil, fmt.Errorf("local file: %w", err)
	}

	base := filepath.Base(url)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	dest := filepath.Join(l.dataDir, base)

	l.logger.Info(ctx, "Moving to data dir: %s -> %s", url, dest)
	if err := os.Rename(url, dest); err != nil {
		return nil, fmt.Errorf("move to data dir: %w", err)
	}

	return &Video{
		AudioPath: dest,
		Title:     base,
		ID:        id,
	}, nil
}
