package report

import (
	"strings"
	"testing"
)

func TestChunkRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxSize int
	}{
		{"empty", "", 10},
		{"short", "hello", 10},
		{"exact fit", "0123456789", 10},
		{"newline split", "line one\nline two\nline three", 10},
		{"no newlines", strings.Repeat("x", 95), 10},
		{"leading newline", "\n" + strings.Repeat("y", 30), 10},
		{"trailing newline", "abc\ndef\n", 5},
		{"tiny cap", "some text here", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Chunk(tt.text, tt.maxSize)
			if len(chunks) == 0 {
				t.Fatal("Chunk() returned no chunks")
			}
			if got := strings.Join(chunks, ""); got != tt.text {
				t.Errorf("round trip failed:\n got %q\nwant %q", got, tt.text)
			}
		})
	}
}

func TestChunkSizeBound(t *testing.T) {
	text := strings.Repeat("word word word\n", 50)
	chunks := Chunk(text, 64)

	for i, c := range chunks[:len(chunks)-1] {
		if len(c) > 64 {
			t.Errorf("chunk %d length = %d, exceeds cap 64", i, len(c))
		}
	}
}

func TestChunkPrefersNewline(t *testing.T) {
	chunks := Chunk("aaaa\nbbbb\ncccc", 7)
	if chunks[0] != "aaaa" {
		t.Errorf("first chunk = %q, want split at newline", chunks[0])
	}
}

func TestChunkEmptyInput(t *testing.T) {
	chunks := Chunk("", 100)
	if len(chunks) != 1 || chunks[0] != "" {
		t.Errorf("Chunk(\"\") = %v, want single empty chunk", chunks)
	}
}

func TestChunkHardBreakProgress(t *testing.T) {
	// Content with no newlines must still terminate and bound chunk size.
	text := strings.Repeat("z", 1000)
	chunks := Chunk(text, 100)
	if len(chunks) != 10 {
		t.Errorf("chunks = %d, want 10", len(chunks))
	}
	for i, c := range chunks {
		if len(c) != 100 {
			t.Errorf("chunk %d length = %d, want 100", i, len(c))
		}
	}
}
