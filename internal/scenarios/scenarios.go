// Package scenarios holds the illustrative machines shipped with turingx:
// the binary increment table and a step-by-step trace of it.
package scenarios

import (
	"context"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/production"
)

// IncrementRules is the classic three-rule increment table. The head starts
// on the most significant digit, so only a leading carry is propagated.
var IncrementRules = map[string][3]string{
	"q0,0": {"q0", "1", "R"},
	"q0,1": {"q0", "0", "L"},
	"q0,_": {"qf", "1", "R"},
}

// CarryIncrementRules scans to the least significant digit before carrying,
// producing a true binary successor.
var CarryIncrementRules = map[string][3]string{
	"q0,0":    {"q0", "0", "R"},
	"q0,1":    {"q0", "1", "R"},
	"q0,_":    {"carry", "_", "L"},
	"carry,1": {"carry", "0", "L"},
	"carry,0": {"qf", "1", "R"},
	"carry,_": {"qf", "1", "R"},
}

var (
	DefaultInputs     = []string{"0", "1", "11", "101"}
	DefaultTraceInput = "101"
	DefaultTraceLimit = 5
)

// NewIncrement builds a machine over IncrementRules.
func NewIncrement(opts ...turingx.Option) *turingx.Machine {
	return newMachine(IncrementRules, opts)
}

// NewCarryIncrement builds a machine over CarryIncrementRules.
func NewCarryIncrement(opts ...turingx.Option) *turingx.Machine {
	return newMachine(CarryIncrementRules, opts)
}

func newMachine(rules map[string][3]string, opts []turingx.Option) *turingx.Machine {
	base := []turingx.Option{
		turingx.WithBlank("_"),
		turingx.WithInitial("q0"),
		turingx.WithFinal("qf"),
	}
	return turingx.NewMachine(turingx.MustParseRules(rules), append(base, opts...)...)
}

// Report is one line of the increment scenario.
type Report struct {
	Input    string `json:"input" yaml:"input"`
	Output   string `json:"output" yaml:"output"`
	Accepted bool   `json:"accepted" yaml:"accepted"`
	Steps    int    `json:"steps" yaml:"steps"`
}

// Increment runs every input on m in turn.
func Increment(m *turingx.Machine, inputs []string, maxSteps int) []Report {
	reports := make([]Report, 0, len(inputs))
	for _, in := range inputs {
		m.Load(in)
		res := m.Run(maxSteps)
		reports = append(reports, Report{
			Input:    in,
			Output:   m.Tape().Render(),
			Accepted: res.Accepted,
			Steps:    res.Steps,
		})
	}
	return reports
}

// StepTrace loads input and calls Step at most limit times, stopping at the
// first stuck step. Each step is also delivered to observers. The returned
// trace has no Result since Run is not used.
func StepTrace(input string, limit int, build func(...turingx.Option) *turingx.Machine, observers ...turingx.Observer) production.Trace {
	rec := production.NewTraceRecorder(0)
	m := build(turingx.WithObserver(production.Fanout(append([]turingx.Observer{rec}, observers...)...)))
	m.Load(input)
	rec.Begin(m, input)

	for i := 0; i < limit; i++ {
		if m.Step() == turingx.Stuck {
			break
		}
	}
	return rec.Trace()
}

// RunTrace loads input and runs it to a halt within maxSteps. The trace
// keeps at most limit steps (0 = all) and carries the run result; skipped
// counts the steps observed past the limit.
func RunTrace(
	ctx context.Context,
	input string,
	maxSteps, limit int,
	build func(...turingx.Option) *turingx.Machine,
	observers ...turingx.Observer,
) (trace production.Trace, skipped int, err error) {
	rec := production.NewTraceRecorder(limit)
	m := build(turingx.WithObserver(production.Fanout(append([]turingx.Observer{rec}, observers...)...)))
	m.Load(input)
	rec.Begin(m, input)

	res, err := m.RunContext(ctx, maxSteps)
	rec.Finish(res)
	return rec.Trace(), rec.Skipped(), err
}
