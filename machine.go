package turingx

import (
	"context"
	"log/slog"

	"github.com/rs/xid"
)

const (
	DefaultBlank    Symbol  = "_"
	DefaultInitial  StateID = "q0"
	DefaultMaxSteps         = 1000
)

// Machine is a single-tape deterministic Turing machine.
//
// A Machine is not safe for concurrent use. Independent machines share
// nothing and may run in parallel.
type Machine struct {
	id      string
	table   Table
	blank   Symbol
	initial StateID
	final   map[StateID]struct{}

	tape    *Tape
	head    int
	current StateID
	steps   int // successful steps since the last Load

	observers []Observer
	log       *slog.Logger
}

// NewMachine creates a machine over a private copy of table. The machine
// starts in the initial state with an empty tape.
func NewMachine(table Table, opts ...Option) *Machine {
	m := &Machine{
		table:   table.clone(),
		blank:   DefaultBlank,
		initial: DefaultInitial,
		final:   make(map[StateID]struct{}),
		log:     slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.id == "" {
		m.id = xid.New().String()
	}
	m.tape = NewTape(m.blank)
	m.current = m.initial
	m.log = m.log.With("machine", m.id)
	return m
}

// ID identifies the machine in logs and step events.
func (m *Machine) ID() string {
	return m.id
}

// Fingerprint identifies the machine's transition table.
func (m *Machine) Fingerprint() string {
	return m.table.Fingerprint()
}

// Tape exposes the machine's tape for inspection.
func (m *Machine) Tape() *Tape {
	return m.tape
}

func (m *Machine) Head() int {
	return m.head
}

func (m *Machine) State() StateID {
	return m.current
}

// IsFinal reports whether state is accepting.
func (m *Machine) IsFinal(state StateID) bool {
	_, ok := m.final[state]
	return ok
}

// Load writes input onto a cleared tape and resets head and state.
func (m *Machine) Load(input string) {
	m.tape.Load(input)
	m.head = 0
	m.current = m.initial
	m.steps = 0
	m.log.Debug("input loaded", "input", input, "state", m.current)
}

// Step performs one transition. It returns Stuck, leaving the machine
// untouched, when no rule matches the current state and scanned symbol.
func (m *Machine) Step() StepResult {
	read := m.tape.Read(m.head)
	action, ok := m.table.Lookup(m.current, read)
	if !ok {
		return Stuck
	}

	var before Snapshot
	if len(m.observers) > 0 {
		before = m.Snapshot()
	}

	m.tape.Write(m.head, action.Write)
	m.head += action.Move.Offset()
	m.current = action.Next
	m.steps++

	if len(m.observers) > 0 {
		evt := StepEvent{
			MachineID: m.id,
			Index:     m.steps,
			Read:      read,
			Action:    action,
			Before:    before,
			After:     m.Snapshot(),
		}
		for _, o := range m.observers {
			o.OnStep(evt)
		}
	}
	return Moved
}

// Run executes at most maxSteps transitions. Acceptance is checked before
// every step, so a machine already in a final state accepts in zero steps,
// even with a zero budget.
func (m *Machine) Run(maxSteps int) RunResult {
	res, _ := m.RunContext(context.Background(), maxSteps)
	return res
}

// RunDefault runs with DefaultMaxSteps.
func (m *Machine) RunDefault() RunResult {
	return m.Run(DefaultMaxSteps)
}

// RunContext is Run with cooperative cancellation. ctx is checked once per
// iteration; on cancellation the partial result is returned with
// OutcomeCancelled and ctx.Err().
func (m *Machine) RunContext(ctx context.Context, maxSteps int) (RunResult, error) {
	if maxSteps <= 0 && m.IsFinal(m.current) {
		return m.halt(OutcomeAccepted, 0), nil
	}

	steps := 0
	for steps < maxSteps {
		if m.IsFinal(m.current) {
			return m.halt(OutcomeAccepted, steps), nil
		}
		if err := ctx.Err(); err != nil {
			return m.halt(OutcomeCancelled, steps), err
		}
		if m.Step() == Stuck {
			return m.halt(OutcomeStuck, steps), nil
		}
		steps++
	}
	// A final state reached on the last budgeted step is not accepted.
	return m.halt(OutcomeBudgetExhausted, steps), nil
}

func (m *Machine) halt(outcome Outcome, steps int) RunResult {
	m.log.Debug("halted",
		"outcome", outcome.String(),
		"steps", steps,
		"state", m.current,
		"head", m.head,
	)
	return RunResult{
		Accepted: outcome == OutcomeAccepted,
		Steps:    steps,
		Outcome:  outcome,
	}
}

// Snapshot returns the rendered tape, head position and state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Tape:  m.tape.Render(),
		Head:  m.head,
		State: m.current,
	}
}
