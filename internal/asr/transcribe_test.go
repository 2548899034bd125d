package asr

import (
	"testing"
)

func TestParseOutput(t *testing.T) {
	data := []byte(`{
		"language": "en",
		"segments": [
			{"start": 0.0, "end": 5.0, "text": " The Q3 revenue was 50 million.", "avg_logprob": -0.05},
			{"start": 5.0, "end": 10.0, "text": " We expect a drop.", "avg_logprob": -0.92}
		]
	}`)

	result, err := parseOutput(data)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}

	if result.Language != "en" {
		t.Errorf("Language = %q, want en", result.Language)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(result.Segments))
	}

	first := result.Segments[0]
	if first.Start != 0.0 || first.End != 5.0 {
		t.Errorf("first segment bounds = [%v, %v], want [0, 5]", first.Start, first.End)
	}
	if first.AvgLogProb != -0.05 {
		t.Errorf("AvgLogProb = %v, want -0.05", first.AvgLogProb)
	}
}

func TestParseOutputEmpty(t *testing.T) {
	result, err := parseOutput([]byte(`{"language": "en", "segments": []}`))
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}
	if len(result.Segments) != 0 {
		t.Errorf("segments = %d, want 0", len(result.Segments))
	}
}

func TestParseOutputInvalid(t *testing.T) {
	if _, err := parseOutput([]byte("not json")); err == nil {
		t.Error("parseOutput() should fail on invalid JSON")
	}
}
