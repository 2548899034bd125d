package pipeline

import "context"

// State is the controller's position in the processing lifecycle.
type State string

const (
	StateIngesting      State = "ingesting"
	StateCheckingMemory State = "checking_memory"
	StateAnalyzing      State = "analyzing"
	StateSynthesizing   State = "synthesizing"
	StatePersisting     State = "persisting"
	StateVectorizing    State = "vectorizing"
	StateCleaningUp     State = "cleaning_up"
	StateNotifying      State = "notifying"
	StateDone           State = "done"
	StateSkipped        State = "skipped"
	StateFailed         State = "failed"
)

// Result describes where one processing request terminated.
type Result struct {
	State           State
	VideoID         string
	Title           string
	URL             string
	Report          string
	SuspiciousCount int
}

// Controller runs the full analysis pipeline for one video identity,
// at most once per identity.
type Controller interface {
	Run(ctx context.Context, url string) (*Result, error)
}
