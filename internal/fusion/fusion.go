// Package fusion reconciles ASR segments, the diarization timeline, and the
// acoustic noise profile into trust-scored verified segments.
package fusion

import (
	"math"
	"strings"

	"github.com/theraaajj/voxguard/internal/asr"
	"github.com/theraaajj/voxguard/internal/diarize"
)

// SpeakerUnknown is assigned when diarization is absent or produced no
// overlap for a segment.
const SpeakerUnknown = "Speaker ??"

// Status classifies a verified segment by its trust score.
type Status string

const (
	StatusVerified   Status = "verified"
	StatusSuspicious Status = "suspicious"
)

// VerifiedSegment is the immutable per-utterance record produced by fusion.
// SpeakerKnown is false when Speaker holds the unknown sentinel, so
// downstream consumers never mistake the fallback for a resolved label.
type VerifiedSegment struct {
	Start        float64
	End          float64
	Speaker      string
	SpeakerKnown bool
	Text         string
	Confidence   float64
	NoiseLevel   float64
	TrustScore   float64
	Status       Status
}

// Options carries the provisional scoring policy knobs.
type Options struct {
	// TrustThreshold: scores at or below it mark a segment suspicious.
	TrustThreshold float64
	// NoiseCap bounds how much noise can discount confidence, so a single
	// noisy frame cannot zero out an otherwise strong transcription.
	NoiseCap float64
}

// DefaultOptions returns the stock scoring policy.
func DefaultOptions() Options {
	return Options{TrustThreshold: 0.6, NoiseCap: 0.5}
}

// Fuse merges the three signal streams into one VerifiedSegment per ASR
// segment, preserving input order and count. Per-segment degradation
// (missing diarization overlap) never drops a segment; fusion cannot fail.
func Fuse(segments []asr.RawSegment, timeline *diarize.Timeline, noise []float64, frameStride, sampleRate int, opts Options) []VerifiedSegment {
	out := make([]VerifiedSegment, 0, len(segments))

	for _, seg := range segments {
		speaker := SpeakerUnknown
		known := false
		if timeline != nil {
			if label, ok := timeline.Dominant(seg.Start, seg.End); ok {
				speaker = label
				known = true
			}
		}

		noiseLevel := segmentNoise(noise, seg.Start, seg.End, frameStride, sampleRate)
		confidence := math.Exp(seg.AvgLogProb)
		trust := confidence * (1.0 - math.Min(noiseLevel, opts.NoiseCap))

		status := StatusVerified
		if trust <= opts.TrustThreshold {
			status = StatusSuspicious
		}

		out = append(out, VerifiedSegment{
			Start:        seg.Start,
			End:          seg.End,
			Speaker:      speaker,
			SpeakerKnown: known,
			Text:         strings.TrimSpace(seg.Text),
			Confidence:   confidence,
			NoiseLevel:   noiseLevel,
			TrustScore:   trust,
			Status:       status,
		})
	}

	return out
}

// segmentNoise averages the profile over the frame range covering
// [start, end). An empty range, e.g. a sub-frame segment, is defined as 0.
func segmentNoise(noise []float64, start, end float64, frameStride, sampleRate int) float64 {
	if len(noise) == 0 || frameStride <= 0 {
		return 0
	}

	startFrame := int(math.Round(start * float64(sampleRate) / float64(frameStride)))
	endFrame := int(math.Round(end * float64(sampleRate) / float64(frameStride)))

	if startFrame < 0 {
		startFrame = 0
	}
	if endFrame > len(noise) {
		endFrame = len(noise)
	}
	if startFrame >= endFrame {
		return 0
	}

	var sum float64
	for _, v := range noise[startFrame:endFrame] {
		sum += v
	}
	return sum / float64(endFrame-startFrame)
}
