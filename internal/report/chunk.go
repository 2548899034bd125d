package report

import "strings"

// Chunk splits text into pieces of at most maxSize bytes, preferring to cut
// at the last newline at or before the limit. When a piece has no newline a
// hard break at exactly maxSize guarantees progress. No byte is dropped or
// duplicated: concatenating the chunks reproduces text exactly. A final
// chunk is always emitted, even for empty input.
func Chunk(text string, maxSize int) []string {
	if maxSize < 1 {
		maxSize = 1
	}

	var chunks []string
	for len(text) > maxSize {
		cut := strings.LastIndexByte(text[:maxSize], '\n')
		if cut <= 0 {
			// No usable newline (absent, or leading). Hard break to make progress.
			cut = maxSize
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}

	return append(chunks, text)
}
