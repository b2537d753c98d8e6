package turingx

import (
	"errors"
	"fmt"
)

// TableBuilder provides a fluent API for constructing transition tables.
//
//	table, err := NewTableBuilder().
//		On("q0", "0").Write("1").Move(Right).Goto("q0").
//		On("q0", "_").Write("1").Move(Right).Goto("qf").
//		Build()
type TableBuilder struct {
	table Table
	order []Key // insertion order, for deterministic error reporting
	errs  []error
}

// RuleBuilder configures a single transition started with TableBuilder.On.
type RuleBuilder struct {
	b      *TableBuilder
	key    Key
	action Action
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{table: make(Table)}
}

// On starts a rule for the given state and scanned symbol. The rule writes
// the scanned symbol back and moves right unless told otherwise.
func (b *TableBuilder) On(state StateID, symbol Symbol) *RuleBuilder {
	return &RuleBuilder{
		b:      b,
		key:    Key{State: state, Symbol: symbol},
		action: Action{Write: symbol, Move: Right},
	}
}

// Rule adds a fully specified transition.
func (b *TableBuilder) Rule(key Key, action Action) *TableBuilder {
	if key.State == "" || key.Symbol == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: empty state or symbol in %s", ErrInvalidRule, key))
		return b
	}
	if action.Next == "" || action.Write == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: empty next state or symbol for %s", ErrInvalidRule, key))
		return b
	}
	if _, exists := b.table[key]; exists {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrDuplicateRule, key))
		return b
	}
	b.table[key] = action
	b.order = append(b.order, key)
	return b
}

// Build returns the table, or every error recorded while building.
func (b *TableBuilder) Build() (Table, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return b.table.clone(), nil
}

// MustBuild is Build for static tables; it panics on error.
func (b *TableBuilder) MustBuild() Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// Keys returns the rule keys in the order they were added.
func (b *TableBuilder) Keys() []Key {
	return append([]Key(nil), b.order...)
}

// Write sets the symbol written under the head.
func (rb *RuleBuilder) Write(symbol Symbol) *RuleBuilder {
	rb.action.Write = symbol
	return rb
}

// Move sets the head direction.
func (rb *RuleBuilder) Move(dir Direction) *RuleBuilder {
	rb.action.Move = dir
	return rb
}

// Goto sets the next state and commits the rule.
func (rb *RuleBuilder) Goto(next StateID) *TableBuilder {
	rb.action.Next = next
	return rb.b.Rule(rb.key, rb.action)
}
