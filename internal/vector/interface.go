package vector

import (
	"context"

	"github.com/theraaajj/voxguard/internal/fusion"
)

// Hit is one ranked result from a semantic query.
type Hit struct {
	Text       string
	VideoID    string
	Title      string
	Start      float64
	Confidence float64
	Flagged    bool
	Score      float64
}

// Index stores verified segments as embeddings and serves semantic lookups.
type Index interface {
	Upsert(ctx context.Context, videoID, title string, segments []fusion.VerifiedSegment) error
	Query(ctx context.Context, text string, topK int) ([]Hit, error)
}

// Embedder converts texts into embedding vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}
