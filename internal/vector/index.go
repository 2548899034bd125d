package vector

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/theraaajj/voxguard/internal/fusion"
	"github.com/theraaajj/voxguard/internal/logger"
)

// entry is one embedded transcript segment in the persisted index.
type entry struct {
	ID         string    `json:"id"`
	VideoID    string    `json:"video_id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Start      float64   `json:"start_time"`
	Confidence float64   `json:"confidence"`
	Flagged    bool      `json:"is_flagged"`
	Vector     []float64 `json:"vector"`
}

type implIndex struct {
	mu       sync.RWMutex
	entries  []entry
	filePath string
	embedder Embedder
	logger   logger.Logger
}

// New creates an Index persisted as JSON at filePath, loading any existing
// entries. A missing file starts an empty index.
func New(filePath string, emb Embedder, log logger.Logger) (Index, error) {
	idx := &implIndex{
		filePath: filePath,
		embedder: emb,
		logger:   log,
	}
	if err := idx.load(); err != nil {
		return nil, err
	}
	return idx, nil
}

func (x *implIndex) load() error {
	data, err := os.ReadFile(x.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read vector index: %w", err)
	}
	if err := json.Unmarshal(data, &x.entries); err != nil {
		return fmt.Errorf("parse vector index: %w", err)
	}
	return nil
}

func (x *implIndex) save() error {
	data, err := json.MarshalIndent(x.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vector index: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(x.filePath), 0755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}
	if err := os.WriteFile(x.filePath, data, 0644); err != nil {
		return fmt.Errorf("write vector index: %w", err)
	}
	return nil
}

// Upsert embeds every segment text and appends the entries for videoID,
// replacing any previous entries for the same video.
func (x *implIndex) Upsert(ctx context.Context, videoID, title string, segments []fusion.VerifiedSegment) error {
	if len(segments) == 0 {
		return nil
	}

	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}

	vectors, err := x.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed segments: %w", err)
	}
	if len(vectors) != len(segments) {
		return fmt.Errorf("embedder returned %d vectors for %d segments", len(vectors), len(segments))
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	kept := x.entries[:0]
	for _, e := range x.entries {
		if e.VideoID != videoID {
			kept = append(kept, e)
		}
	}
	x.entries = kept

	for i, seg := range segments {
		x.entries = append(x.entries, entry{
			ID:         fmt.Sprintf("%s_%s", videoID, uuid.NewString()[:8]),
			VideoID:    videoID,
			Title:      title,
			Text:       seg.Text,
			Start:      seg.Start,
			Confidence: seg.Confidence,
			Flagged:    seg.Status == fusion.StatusSuspicious,
			Vector:     vectors[i],
		})
	}

	x.logger.Info(ctx, "Indexed %d segments for video %s", len(segments), videoID)
	return x.save()
}

// Query embeds text and returns the topK entries ranked by cosine similarity.
func (x *implIndex) Query(ctx context.Context, text string, topK int) ([]Hit, error) {
	if topK <= 0 {
		topK = 5
	}

	vectors, err := x.embedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	query := vectors[0]

	x.mu.RLock()
	defer x.mu.RUnlock()

	hits := make([]Hit, 0, len(x.entries))
	for _, e := range x.entries {
		hits = append(hits, Hit{
			Text:       e.Text,
			VideoID:    e.VideoID,
			Title:      e.Title,
			Start:      e.Start,
			Confidence: e.Confidence,
			Flagged:    e.Flagged,
			Score:      cosine(query, e.Vector),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
