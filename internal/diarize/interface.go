package diarize

import "context"

// Diarizer partitions an audio file into speaker-attributed intervals.
// A nil timeline with a nil error means diarization is unavailable and the
// caller should degrade to unknown speakers.
type Diarizer interface {
	Diarize(ctx context.Context, audioPath string) (*Timeline, error)
}
