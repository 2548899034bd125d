package diarize

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Diarize runs the configured command against audioPath and parses its RTTM
// output. Any failure degrades to a nil timeline rather than erroring; the
// pipeline treats missing diarization as recoverable.
func (d *implDiarizer) Diarize(ctx context.Context, audioPath string) (*Timeline, error) {
	if d.cfg.Command == "" {
		d.logger.Warn(ctx, "Diarization not configured, speakers will be unknown")
		return nil, nil
	}

	d.logger.Info(ctx, "Identifying speakers: %s", audioPath)

	args := append(append([]string{}, d.cfg.Args...), audioPath)
	out, err := d.executor.Execute(ctx, d.cfg.Command, args...)
	if err != nil {
		d.logger.Warn(ctx, "Diarization failed, falling back to unknown speakers: %v", err)
		return nil, nil
	}

	timeline, err := ParseRTTM(out)
	if err != nil {
		d.logger.Warn(ctx, "Diarization output unreadable, falling back: %v", err)
		return nil, nil
	}

	d.logger.Info(ctx, "Diarization completed: %d speaker turns", len(timeline.Turns))
	return timeline, nil
}

// ParseRTTM reads SPEAKER lines from RTTM content into a Timeline.
// Lines: SPEAKER <file> <chan> <onset> <duration> <ortho> <stype> <name> ...
func ParseRTTM(content string) (*Timeline, error) {
	timeline := &Timeline{}

	for lineNo, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 8 || fields[0] != "SPEAKER" {
			continue
		}

		onset, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("rttm line %d: bad onset %q", lineNo+1, fields[3])
		}
		duration, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("rttm line %d: bad duration %q", lineNo+1, fields[4])
		}

		timeline.Turns = append(timeline.Turns, Turn{
			Start:   onset,
			End:     onset + duration,
			Speaker: fields[7],
		})
	}

	return timeline, nil
}
