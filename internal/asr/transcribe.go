package asr

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// whisperOutput mirrors the JSON document the whisper CLI writes alongside
// the audio file when asked for JSON output.
type whisperOutput struct {
	Language string `json:"language"`
	Segments []struct {
		Start      float64 `json:"start"`
		End        float64 `json:"end"`
		Text       string  `json:"text"`
		AvgLogProb float64 `json:"avg_logprob"`
	} `json:"segments"`
}

// Transcribe runs the whisper binary on audioPath and parses the JSON it
// produces. The whole lazy segment stream is consumed into memory here;
// fusion downstream wants the full ordered slice anyway.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	outDir, err := os.MkdirTemp("", "voxguard-asr-*")
	if err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, audioPath)

	args := []string{
		audioPath,
		"--model", t.cfg.ModelPath,
		"--output_format", "json",
		"--output_dir", outDir,
		"--language", t.cfg.Language,
		"--threads", strconv.Itoa(t.cfg.Threads),
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	jsonPath := filepath.Join(outDir, base+".json")

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	result, err := parseOutput(data)
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed: %d segments, language %s",
		len(result.Segments), result.Language)
	return result, nil
}

func parseOutput(data []byte) (*Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	result := &Result{Language: out.Language}
	for _, s := range out.Segments {
		result.Segments = append(result.Segments, RawSegment{
			Start:      s.Start,
			End:        s.End,
			Text:       s.Text,
			AvgLogProb: s.AvgLogProb,
		})
	}
	return result, nil
}
