package turingx

import "strings"

// Tape is a sparse, two-way unbounded tape. Only non-blank cells are stored,
// so an absent position reads as the blank symbol.
type Tape struct {
	blank Symbol
	cells map[int]Symbol
}

// NewTape creates an empty tape.
func NewTape(blank Symbol) *Tape {
	return &Tape{
		blank: blank,
		cells: make(map[int]Symbol),
	}
}

// Blank returns the symbol treated as empty.
func (t *Tape) Blank() Symbol {
	return t.blank
}

// Load clears the tape and writes input one rune per cell from position 0.
func (t *Tape) Load(input string) {
	clear(t.cells)
	pos := 0
	for _, r := range input {
		t.Write(pos, Symbol(r))
		pos++
	}
}

// Read returns the symbol at pos, or the blank symbol.
func (t *Tape) Read(pos int) Symbol {
	if s, ok := t.cells[pos]; ok {
		return s
	}
	return t.blank
}

// Write stores s at pos. Writing the blank symbol erases the cell.
func (t *Tape) Write(pos int, s Symbol) {
	if s == t.blank {
		delete(t.cells, pos)
		return
	}
	t.cells[pos] = s
}

// Len is the number of non-blank cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Bounds returns the lowest and highest occupied positions.
func (t *Tape) Bounds() (lo, hi int, ok bool) {
	for pos := range t.cells {
		if !ok {
			lo, hi, ok = pos, pos, true
			continue
		}
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	return lo, hi, ok
}

// Render concatenates every cell between the occupied extremes. An empty
// tape renders as a single blank symbol.
func (t *Tape) Render() string {
	lo, hi, ok := t.Bounds()
	if !ok {
		return string(t.blank)
	}
	var sb strings.Builder
	for pos := lo; pos <= hi; pos++ {
		sb.WriteString(string(t.Read(pos)))
	}
	return sb.String()
}

// Cells returns a copy of the occupied cells.
func (t *Tape) Cells() map[int]Symbol {
	snapshot := make(map[int]Symbol, len(t.cells))
	for k, v := range t.cells {
		snapshot[k] = v
	}
	return snapshot
}
