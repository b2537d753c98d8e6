package turingx

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// ParseRules converts the compact "state,symbol" -> [next, write, dir] form
// into a Table. The key is split at its last comma, so state names may
// contain commas but symbols may not. Directions must be "L" or "R".
func ParseRules(rules map[string][3]string) (Table, error) {
	table := make(Table, len(rules))
	for raw, rhs := range rules {
		key, err := parseKey(raw)
		if err != nil {
			return nil, err
		}
		if rhs[0] == "" || rhs[1] == "" {
			return nil, fmt.Errorf("%w: rule %q has an empty next state or symbol", ErrInvalidRule, raw)
		}
		dir, err := ParseDirection(rhs[2])
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", raw, err)
		}
		table[key] = Action{
			Next:  StateID(rhs[0]),
			Write: Symbol(rhs[1]),
			Move:  dir,
		}
	}
	return table, nil
}

// MustParseRules is ParseRules for static tables; it panics on error.
func MustParseRules(rules map[string][3]string) Table {
	t, err := ParseRules(rules)
	if err != nil {
		panic(err)
	}
	return t
}

func parseKey(raw string) (Key, error) {
	idx := strings.LastIndex(raw, ",")
	if idx <= 0 || idx == len(raw)-1 {
		return Key{}, fmt.Errorf("%w: key %q is not of the form state,symbol", ErrInvalidRule, raw)
	}
	return Key{
		State:  StateID(raw[:idx]),
		Symbol: Symbol(raw[idx+1:]),
	}, nil
}

// Fingerprint is a short deterministic hash of the rules, independent of
// how the table was built.
func (t Table) Fingerprint() string {
	keys := make([]Key, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		return cmp.Or(cmp.Compare(a.State, b.State), cmp.Compare(a.Symbol, b.Symbol))
	})

	h := sha256.New()
	for _, k := range keys {
		a := t[k]
		fmt.Fprintf(h, "%q %q %q %q %s\n", k.State, k.Symbol, a.Next, a.Write, a.Move)
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}
