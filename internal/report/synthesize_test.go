package report

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/theraaajj/voxguard/internal/config"
	"github.com/theraaajj/voxguard/internal/fusion"
	"github.com/theraaajj/voxguard/internal/logger"
)

// fakeGenerator records prompts and replays scripted responses.
type fakeGenerator struct {
	prompts []string
	respond func(call int, prompt string) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	call := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	if f.respond != nil {
		return f.respond(call, prompt)
	}
	return "generated report", nil
}

func testConfig() config.ReportConfig {
	return config.ReportConfig{
		SingleShotMaxChars: 15000,
		ShortWordCount:     300,
		ChunkSize:          6000,
		MapDelaySeconds:    5,
	}
}

func newTestSynthesizer(cfg config.ReportConfig, gen Generator) (*implSynthesizer, *[]time.Duration) {
	var sleeps []time.Duration
	s := New(cfg, gen, logger.New("error")).(*implSynthesizer)
	s.sleep = func(ctx context.Context, d time.Duration) {
		sleeps = append(sleeps, d)
	}
	return s, &sleeps
}

func verifiedSeg(start float64, speaker, text string) fusion.VerifiedSegment {
	return fusion.VerifiedSegment{
		Start:      start,
		End:        start + 5,
		Speaker:    speaker,
		Text:       text,
		Confidence: 0.9,
		TrustScore: 0.9,
		Status:     fusion.StatusVerified,
	}
}

func longSegments(totalChars int) []fusion.VerifiedSegment {
	// Each segment contributes a ~100-char transcript line.
	line := strings.Repeat("w ", 40)
	var out []fusion.VerifiedSegment
	chars := 0
	for i := 0; chars < totalChars; i++ {
		seg := verifiedSeg(float64(i*5), "SPEAKER_00", line)
		out = append(out, seg)
		chars += len(fmt.Sprintf("[%.1fs] %s: %s\n", seg.Start, seg.Speaker, seg.Text))
	}
	return out
}

func TestBuildAuditLog(t *testing.T) {
	segments := []fusion.VerifiedSegment{
		{Start: 0, Speaker: "A", Confidence: 0.95, Status: fusion.StatusVerified},
		{Start: 5, Speaker: "B", Confidence: 0.40, Status: fusion.StatusSuspicious},
	}

	got := buildAuditLog(segments)
	want := "- 5.0s: B | Confidence 0.40 (Flagged)"
	if got != want {
		t.Errorf("audit log = %q, want %q", got, want)
	}

	if got := buildAuditLog(segments[:1]); got != noAnomalies {
		t.Errorf("clean audit log = %q, want sentinel", got)
	}
}

func TestBuildTranscript(t *testing.T) {
	segments := []fusion.VerifiedSegment{
		verifiedSeg(0, "SPEAKER_00", "hello"),
		verifiedSeg(5, "SPEAKER_01", "hi there"),
	}

	got := buildTranscript(segments)
	want := "[0.0s] SPEAKER_00: hello\n[5.0s] SPEAKER_01: hi there"
	if got != want {
		t.Errorf("transcript = %q, want %q", got, want)
	}
}

func TestSynthesizeSingleShotShort(t *testing.T) {
	gen := &fakeGenerator{}
	s, sleeps := newTestSynthesizer(testConfig(), gen)

	segments := []fusion.VerifiedSegment{verifiedSeg(0, "SPEAKER_00", "brief remark")}
	out, err := s.Synthesize(context.Background(), "Short Video", segments)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if out != "generated report" {
		t.Errorf("report = %q", out)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("generation calls = %d, want 1", len(gen.prompts))
	}
	if len(*sleeps) != 0 {
		t.Errorf("sleeps = %d, want 0 for single-shot", len(*sleeps))
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, terseLength) {
		t.Error("short transcript should select terse length instruction")
	}
	if !strings.Contains(prompt, mergeSpeakers) {
		t.Error("short transcript should select merge-speakers guidance")
	}
	for _, section := range []string{"Executive Summary", "Key Arguments", "Data Integrity Warnings",
		"Speaker Identification", "Key Technical Terms", "Recommendations"} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
	if !strings.Contains(prompt, noAnomalies) {
		t.Error("clean run should pass the no-anomalies sentinel")
	}
}

func TestSynthesizeSingleShotLongWording(t *testing.T) {
	gen := &fakeGenerator{}
	s, _ := newTestSynthesizer(testConfig(), gen)

	// Over 300 words but under the char threshold.
	text := strings.Repeat("word ", 80)
	segments := []fusion.VerifiedSegment{
		verifiedSeg(0, "A", text),
		verifiedSeg(5, "B", text),
		verifiedSeg(10, "A", text),
		verifiedSeg(15, "B", text),
		verifiedSeg(20, "A", text),
	}

	if _, err := s.Synthesize(context.Background(), "Talk", segments); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, fullLength) {
		t.Error("long transcript should select full length instruction")
	}
	if !strings.Contains(prompt, splitSpeakers) {
		t.Error("long transcript should select distinguish-speakers guidance")
	}
}

func TestStrategySelectionThreshold(t *testing.T) {
	// The strategy flips exactly at the character threshold.
	for _, tc := range []struct {
		name      string
		threshold int
		wantCalls int // 1 for single-shot; >1 for map-reduce (maps + reduce)
	}{
		{"below threshold single shot", 40000, 1},
		{"at threshold map reduce", 2000, 4}, // ~18k chars / 6k chunks -> 3 maps + reduce
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.SingleShotMaxChars = tc.threshold

			gen := &fakeGenerator{}
			s, _ := newTestSynthesizer(cfg, gen)
			segments := longSegments(18000)

			if _, err := s.Synthesize(context.Background(), "Long", segments); err != nil {
				t.Fatalf("Synthesize() error = %v", err)
			}
			if tc.wantCalls == 1 && len(gen.prompts) != 1 {
				t.Errorf("calls = %d, want 1", len(gen.prompts))
			}
			if tc.wantCalls > 1 && len(gen.prompts) < 3 {
				t.Errorf("calls = %d, want map-reduce fan-out", len(gen.prompts))
			}
		})
	}
}

func TestStrategySelectionDeterministic(t *testing.T) {
	segments := longSegments(18000)

	counts := make([]int, 2)
	for i := range counts {
		gen := &fakeGenerator{}
		cfg := testConfig()
		cfg.SingleShotMaxChars = 2000
		s, _ := newTestSynthesizer(cfg, gen)
		if _, err := s.Synthesize(context.Background(), "Long", segments); err != nil {
			t.Fatal(err)
		}
		counts[i] = len(gen.prompts)
	}
	if counts[0] != counts[1] {
		t.Errorf("strategy not deterministic: %d vs %d calls", counts[0], counts[1])
	}
}

func TestMapReducePacing(t *testing.T) {
	cfg := testConfig()
	cfg.SingleShotMaxChars = 2000
	cfg.ChunkSize = 4000

	gen := &fakeGenerator{}
	s, sleeps := newTestSynthesizer(cfg, gen)
	segments := longSegments(12000)

	if _, err := s.Synthesize(context.Background(), "Long", segments); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	mapCalls := len(gen.prompts) - 1 // last call is the reduce
	if mapCalls < 2 {
		t.Fatalf("map calls = %d, want at least 2", mapCalls)
	}
	// Delay strictly between map calls: one fewer sleep than calls.
	if len(*sleeps) != mapCalls-1 {
		t.Errorf("sleeps = %d, want %d", len(*sleeps), mapCalls-1)
	}
	for _, d := range *sleeps {
		if d != 5*time.Second {
			t.Errorf("sleep = %v, want 5s", d)
		}
	}
}

func TestMapReducePartialFailure(t *testing.T) {
	cfg := testConfig()
	cfg.SingleShotMaxChars = 2000
	cfg.ChunkSize = 4000

	gen := &fakeGenerator{
		respond: func(call int, prompt string) (string, error) {
			if strings.HasPrefix(prompt, "You are VoxGuard, an AI analyst.") {
				return "final report", nil
			}
			if call == 0 {
				return "", fmt.Errorf("transient upstream error")
			}
			return fmt.Sprintf("summary %d", call), nil
		},
	}
	s, _ := newTestSynthesizer(cfg, gen)

	out, err := s.Synthesize(context.Background(), "Long", longSegments(12000))
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if out != "final report" {
		t.Errorf("report = %q, want final report despite one lost chunk", out)
	}

	// The reduce prompt must not contain the failed chunk's contribution.
	reduce := gen.prompts[len(gen.prompts)-1]
	if strings.Contains(reduce, "summary 0") {
		t.Error("reduce prompt contains output of failed map call")
	}
	if !strings.Contains(reduce, "summary 1") {
		t.Error("reduce prompt missing surviving summary")
	}
}

func TestMapReduceAllMapsFail(t *testing.T) {
	cfg := testConfig()
	cfg.SingleShotMaxChars = 2000
	cfg.ChunkSize = 4000

	reduceRan := false
	gen := &fakeGenerator{
		respond: func(call int, prompt string) (string, error) {
			if strings.HasPrefix(prompt, "You are VoxGuard, an AI analyst.") {
				reduceRan = true
				return "report from nothing", nil
			}
			return "", fmt.Errorf("down")
		},
	}
	s, _ := newTestSynthesizer(cfg, gen)

	out, err := s.Synthesize(context.Background(), "Long", longSegments(12000))
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if !reduceRan {
		t.Error("reduce must still run when every map call fails")
	}
	if out != "report from nothing" {
		t.Errorf("report = %q", out)
	}
}

func TestSynthesizeTotalFailure(t *testing.T) {
	gen := &fakeGenerator{
		respond: func(call int, prompt string) (string, error) {
			return "", fmt.Errorf("service unavailable")
		},
	}
	s, _ := newTestSynthesizer(testConfig(), gen)

	if _, err := s.Synthesize(context.Background(), "T", []fusion.VerifiedSegment{
		verifiedSeg(0, "A", "hello"),
	}); err == nil {
		t.Error("total generation failure must surface as an error")
	}
}

func TestAnswer(t *testing.T) {
	gen := &fakeGenerator{}
	s, _ := newTestSynthesizer(testConfig(), gen)

	out, err := s.Answer(context.Background(), "what was revenue?", []string{"revenue was 50M"})
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if out != "generated report" {
		t.Errorf("answer = %q", out)
	}
	if !strings.Contains(gen.prompts[0], "EXCERPT 1") {
		t.Error("answer prompt missing excerpt numbering")
	}
}

func TestAnswerNoContext(t *testing.T) {
	gen := &fakeGenerator{}
	s, _ := newTestSynthesizer(testConfig(), gen)

	out, err := s.Answer(context.Background(), "anything?", nil)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Error("no generation call expected without excerpts")
	}
	if !strings.Contains(out, "no relevant information") {
		t.Errorf("answer = %q", out)
	}
}

func TestExampleTrustScenario(t *testing.T) {
	// End-to-end of the documented scoring example feeding the audit log.
	segments := []fusion.VerifiedSegment{
		{Start: 0, End: 5, Speaker: "A", Text: "The Q3 revenue was 50 million.",
			Confidence: 0.95, TrustScore: 0.95, Status: fusion.StatusVerified},
		{Start: 5, End: 10, Speaker: "B", Text: "We expect a drop.",
			Confidence: 0.40, TrustScore: 0.40 * (1 - 0.5), Status: fusion.StatusSuspicious},
	}

	if math.Abs(segments[1].TrustScore-0.20) > 1e-9 {
		t.Fatalf("trust = %v, want 0.20", segments[1].TrustScore)
	}

	audit := buildAuditLog(segments)
	if strings.Count(audit, "\n")+1 != 1 {
		t.Errorf("audit log should contain exactly one line, got %q", audit)
	}
	if !strings.Contains(audit, "5.0s") {
		t.Errorf("audit log should flag the second segment, got %q", audit)
	}
}
