package fusion

import "strings"

// AvgConfidence returns the mean confidence across segments, 0 when empty.
func AvgConfidence(segments []VerifiedSegment) float64 {
	if len(segments) == 0 {
		return 0
	}
	var sum float64
	for _, s := range segments {
		sum += s.Confidence
	}
	return sum / float64(len(segments))
}

// LowestConfidence returns the minimum confidence across segments, 0 when empty.
func LowestConfidence(segments []VerifiedSegment) float64 {
	if len(segments) == 0 {
		return 0
	}
	low := segments[0].Confidence
	for _, s := range segments[1:] {
		if s.Confidence < low {
			low = s.Confidence
		}
	}
	return low
}

// SuspiciousCount counts segments flagged suspicious.
func SuspiciousCount(segments []VerifiedSegment) int {
	n := 0
	for _, s := range segments {
		if s.Status == StatusSuspicious {
			n++
		}
	}
	return n
}

// AnyFlagged reports whether any segment is suspicious.
func AnyFlagged(segments []VerifiedSegment) bool {
	return SuspiciousCount(segments) > 0
}

// JoinText concatenates segment texts with single spaces, forming the raw
// transcript stored alongside the report.
func JoinText(segments []VerifiedSegment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}
