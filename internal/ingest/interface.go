package ingest

import "context"

// Video is the outcome of a successful download: the local audio artifact
// plus the metadata that defines the video's stable identity.
type Video struct {
	AudioPath string
	Title     string
	ID        string
}

// Downloader fetches a video's audio track as 16 kHz mono WAV.
type Downloader interface {
	Download(ctx context.Context, url string) (*Video, error)
}
