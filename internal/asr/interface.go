package asr

import "context"

// RawSegment is one timestamped utterance as emitted by the speech model.
type RawSegment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	AvgLogProb float64 `json:"avg_logprob"`
}

// Result is the full transcription of one audio file.
type Result struct {
	Segments []RawSegment `json:"segments"`
	Language string       `json:"language"`
}

// Transcriber converts an audio file into timestamped transcript segments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
