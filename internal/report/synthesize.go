package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theraaajj/voxguard/internal/fusion"
)

// Synthesize builds the intelligence report for one video. The strategy is
// chosen deterministically from the transcript length: below the configured
// character threshold a single generation call produces the report, at or
// above it the transcript is chunked and summarized map-reduce style.
func (s *implSynthesizer) Synthesize(ctx context.Context, videoTitle string, segments []fusion.VerifiedSegment) (string, error) {
	s.logger.Info(ctx, "Generating intelligence report: %s", videoTitle)

	auditLog := buildAuditLog(segments)
	transcript := buildTranscript(segments)

	if len(transcript) < s.cfg.SingleShotMaxChars {
		s.logger.Info(ctx, "Mode: single-shot (%d chars)", len(transcript))
		return s.singleShot(ctx, videoTitle, transcript, auditLog)
	}

	s.logger.Info(ctx, "Mode: map-reduce (%d chars)", len(transcript))
	return s.mapReduce(ctx, videoTitle, transcript, auditLog)
}

// buildAuditLog lists every suspicious segment in original order, or the
// no-anomalies sentinel when nothing was flagged.
func buildAuditLog(segments []fusion.VerifiedSegment) string {
	var lines []string
	for _, seg := range segments {
		if seg.Status != fusion.StatusSuspicious {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %.1fs: %s | Confidence %.2f (Flagged)",
			seg.Start, seg.Speaker, seg.Confidence))
	}
	if len(lines) == 0 {
		return noAnomalies
	}
	return strings.Join(lines, "\n")
}

// buildTranscript renders the diarized transcript, one segment per line.
func buildTranscript(segments []fusion.VerifiedSegment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, fmt.Sprintf("[%.1fs] %s: %s", seg.Start, seg.Speaker, seg.Text))
	}
	return strings.Join(lines, "\n")
}

func (s *implSynthesizer) singleShot(ctx context.Context, title, transcript, auditLog string) (string, error) {
	lengthInstruction := fullLength
	diarizationInstruction := splitSpeakers
	if len(strings.Fields(transcript)) < s.cfg.ShortWordCount {
		lengthInstruction = terseLength
		diarizationInstruction = mergeSpeakers
	}

	prompt := fmt.Sprintf(singleShotPrompt, title, transcript, auditLog,
		lengthInstruction, diarizationInstruction)

	out, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("single-shot generation: %w", err)
	}
	return out, nil
}

func (s *implSynthesizer) mapReduce(ctx context.Context, title, transcript, auditLog string) (string, error) {
	chunks := Chunk(transcript, s.cfg.ChunkSize)
	s.logger.Info(ctx, "Split transcript into %d parts", len(chunks))

	delay := time.Duration(s.cfg.MapDelaySeconds) * time.Second

	var summaries []string
	for i, chunk := range chunks {
		// Pace calls strictly between one another, never before the first.
		if i > 0 && delay > 0 {
			s.sleep(ctx, delay)
		}

		s.logger.Info(ctx, "Summarizing part %d/%d", i+1, len(chunks))
		summary, err := s.generator.Generate(ctx, fmt.Sprintf(mapPrompt, chunk))
		if err != nil {
			// A lost chunk degrades the report but never aborts the rest.
			s.logger.Warn(ctx, "Part %d/%d failed, continuing without it: %v", i+1, len(chunks), err)
			continue
		}
		if summary != "" {
			summaries = append(summaries, summary)
		}
	}

	combined := strings.Join(summaries, "\n\n")

	out, err := s.generator.Generate(ctx, fmt.Sprintf(reducePrompt, title, combined, auditLog))
	if err != nil {
		return "", fmt.Errorf("reduce generation: %w", err)
	}
	return out, nil
}

// Answer synthesizes a response to a user query from transcript excerpts
// retrieved by the vector index.
func (s *implSynthesizer) Answer(ctx context.Context, query string, excerpts []string) (string, error) {
	if len(excerpts) == 0 {
		return "I found no relevant information in the video memory to answer this.", nil
	}

	var b strings.Builder
	for i, excerpt := range excerpts {
		fmt.Fprintf(&b, "--- EXCERPT %d ---\n%s\n", i+1, excerpt)
	}

	out, err := s.generator.Generate(ctx, fmt.Sprintf(answerPrompt, query, b.String()))
	if err != nil {
		return "", fmt.Errorf("answer generation: %w", err)
	}
	return out, nil
}
