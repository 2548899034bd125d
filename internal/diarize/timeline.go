package diarize

// Turn is one attributed interval on the diarization timeline.
type Turn struct {
	Start   float64
	End     float64
	Speaker string
}

// Timeline is the ordered set of speaker turns covering a waveform.
type Timeline struct {
	Turns []Turn
}

// Crop returns the turns overlapping [start, end), clipped to that window,
// preserving timeline order.
func (t *Timeline) Crop(start, end float64) []Turn {
	var out []Turn
	for _, turn := range t.Turns {
		if turn.End <= start || turn.Start >= end {
			continue
		}
		clipped := turn
		if clipped.Start < start {
			clipped.Start = start
		}
		if clipped.End > end {
			clipped.End = end
		}
		out = append(out, clipped)
	}
	return out
}

// Dominant returns the speaker with the greatest total overlapping duration
// inside [start, end). Ties break toward the speaker seen first on the
// timeline. ok is false when nothing overlaps the window.
func (t *Timeline) Dominant(start, end float64) (string, bool) {
	if t == nil {
		return "", false
	}

	totals := make(map[string]float64)
	var order []string

	for _, turn := range t.Crop(start, end) {
		if _, seen := totals[turn.Speaker]; !seen {
			order = append(order, turn.Speaker)
		}
		totals[turn.Speaker] += turn.End - turn.Start
	}

	if len(order) == 0 {
		return "", false
	}

	best := order[0]
	for _, speaker := range order[1:] {
		if totals[speaker] > totals[best] {
			best = speaker
		}
	}
	return best, true
}
