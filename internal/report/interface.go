package report

import (
	"context"

	"github.com/theraaajj/voxguard/internal/fusion"
)

// Generator is the external text-generation collaborator. One prompt in,
// generated text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Synthesizer turns verified segments into the final intelligence report.
// A non-nil error means total synthesis failure; a degraded report (lost
// chunks, unknown speakers) is still returned with a nil error.
type Synthesizer interface {
	Synthesize(ctx context.Context, videoTitle string, segments []fusion.VerifiedSegment) (string, error)
	Answer(ctx context.Context, query string, excerpts []string) (string, error)
}
