package watcher

import (
	"context"
	"testing"

	"github.com/theraaajj/voxguard/internal/logger"
)

func TestIsMediaFile(t *testing.T) {
	w := &implWatcher{}
	tests := []struct {
		path string
		want bool
	}{
		{"/inbox/briefing.wav", true},
		{"/inbox/interview.MP3", true},
		{"/inbox/press_conf.mkv", true},
		{"/inbox/notes.txt", false},
		{"/inbox/.DS_Store", false},
		{"/inbox/report.pdf", false},
	}
	for _, tt := range tests {
		if got := w.isMediaFile(tt.path); got != tt.want {
			t.Errorf("isMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewMissingDir(t *testing.T) {
	handler := func(ctx context.Context, path string) error { return nil }
	_, err := New("/nonexistent/inbox", handler, logger.New("error"), 1)
	if err == nil {
		t.Fatal("New() should fail for a missing directory")
	}
}

func TestNewValidDir(t *testing.T) {
	handler := func(ctx context.Context, path string) error { return nil }
	w, err := New(t.TempDir(), handler, logger.New("error"), 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}
