package turingx

import "log/slog"

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// WithBlank sets the blank symbol (default "_").
func WithBlank(blank Symbol) Option {
	return func(m *Machine) {
		m.blank = blank
	}
}

// WithInitial sets the state entered on every Load (default "q0").
func WithInitial(state StateID) Option {
	return func(m *Machine) {
		m.initial = state
	}
}

// WithFinal adds accepting states.
func WithFinal(states ...StateID) Option {
	return func(m *Machine) {
		for _, s := range states {
			m.final[s] = struct{}{}
		}
	}
}

// WithObserver registers an Observer for step events.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

// WithLogger configures the Machine with a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithID overrides the generated machine id.
func WithID(id string) Option {
	return func(m *Machine) {
		m.id = id
	}
}
