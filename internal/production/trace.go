package production

import (
	"sync"
	"time"

	"github.com/comalice/turingx"
)

// Trace is the textual history of one machine run.
type Trace struct {
	MachineID string              `json:"machineID" yaml:"machineID"`
	Table     string              `json:"table" yaml:"table"`
	Input     string              `json:"input" yaml:"input"`
	Initial   turingx.Snapshot    `json:"initial" yaml:"initial"`
	Steps     []turingx.StepEvent `json:"steps" yaml:"steps"`
	Result    *turingx.RunResult  `json:"result,omitempty" yaml:"result,omitempty"`
	Timestamp time.Time           `json:"timestamp" yaml:"timestamp"`
}

// TraceRecorder is an Observer that accumulates a Trace. Limit caps the
// number of recorded steps (0 = unbounded); later steps are counted but
// not stored.
type TraceRecorder struct {
	mu      sync.Mutex
	limit   int
	skipped int
	trace   Trace
}

// NewTraceRecorder creates a recorder keeping at most limit steps.
func NewTraceRecorder(limit int) *TraceRecorder {
	return &TraceRecorder{limit: limit}
}

// Begin resets the recorder for a freshly loaded machine.
func (r *TraceRecorder) Begin(m *turingx.Machine, input string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped = 0
	r.trace = Trace{
		MachineID: m.ID(),
		Table:     m.Fingerprint(),
		Input:     input,
		Initial:   m.Snapshot(),
		Timestamp: time.Now().UTC(),
	}
}

func (r *TraceRecorder) OnStep(evt turingx.StepEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.limit > 0 && len(r.trace.Steps) >= r.limit {
		r.skipped++
		return
	}
	r.trace.Steps = append(r.trace.Steps, evt)
}

// Finish attaches the run result.
func (r *TraceRecorder) Finish(res turingx.RunResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trace.Result = &res
}

// Skipped counts steps observed past the limit.
func (r *TraceRecorder) Skipped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped
}

// Trace returns a copy of the recorded trace.
func (r *TraceRecorder) Trace() Trace {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.trace
	t.Steps = append([]turingx.StepEvent(nil), r.trace.Steps...)
	if r.trace.Result != nil {
		res := *r.trace.Result
		t.Result = &res
	}
	return t
}
