package turingx

import (
	"errors"
	"fmt"
)

type Symbol string
type StateID string

// Direction is the head movement applied after a write.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Offset is the head displacement for d.
func (d Direction) Offset() int {
	if d == Right {
		return 1
	}
	return -1
}

// ParseDirection accepts the "L" and "R" tokens only.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	}
	return Left, fmt.Errorf("%w: %q", ErrInvalidDirection, token)
}

// MarshalText encodes the direction as its "L"/"R" token.
func (d Direction) MarshalText() ([]byte, error) {
	if d != Left && d != Right {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ---

// Key selects a transition by control state and the symbol under the head.
type Key struct {
	State  StateID
	Symbol Symbol
}

func (k Key) String() string {
	return fmt.Sprintf("(%s, %s)", k.State, k.Symbol)
}

// Action is what a matching transition does: write, move, then change state.
type Action struct {
	Next  StateID   `json:"next" yaml:"next"`
	Write Symbol    `json:"write" yaml:"write"`
	Move  Direction `json:"move" yaml:"move"`
}

// Table is a deterministic transition function. Absent keys mean no move.
type Table map[Key]Action

// Lookup returns the action for (state, symbol), if any.
func (t Table) Lookup(state StateID, symbol Symbol) (Action, bool) {
	a, ok := t[Key{State: state, Symbol: symbol}]
	return a, ok
}

func (t Table) clone() Table {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// StepResult tags the outcome of a single Step.
type StepResult int

const (
	Moved StepResult = iota
	Stuck
)

func (r StepResult) String() string {
	if r == Moved {
		return "moved"
	}
	return "stuck"
}

// Outcome is the terminal condition of a Run.
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeStuck
	OutcomeBudgetExhausted
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeStuck:
		return "stuck"
	case OutcomeBudgetExhausted:
		return "budget-exhausted"
	case OutcomeCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for _, c := range []Outcome{OutcomeAccepted, OutcomeStuck, OutcomeBudgetExhausted, OutcomeCancelled} {
		if c.String() == string(text) {
			*o = c
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// RunResult reports how a Run halted.
type RunResult struct {
	Accepted bool    `json:"accepted" yaml:"accepted"`
	Steps    int     `json:"steps" yaml:"steps"`
	Outcome  Outcome `json:"outcome" yaml:"outcome"`
}

// Snapshot is a read-only view of a machine configuration.
type Snapshot struct {
	Tape  string  `json:"tape" yaml:"tape"`
	Head  int     `json:"head" yaml:"head"`
	State StateID `json:"state" yaml:"state"`
}

func (s Snapshot) String() string {
	return fmt.Sprintf("tape=%s head=%d state=%s", s.Tape, s.Head, s.State)
}

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidRule      = errors.New("invalid rule")
	ErrDuplicateRule    = errors.New("duplicate rule")
)
