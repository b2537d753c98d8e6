// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"strings"

	"github.com/comalice/turingx"
)

// GenSweepTable creates a machine that walks right over an input of 0s and
// 1s, then walks back left to the start and accepts.
func GenSweepTable() turingx.Table {
	return turingx.NewTableBuilder().
		On("q0", "0").Goto("q0").
		On("q0", "1").Goto("q0").
		On("q0", "_").Move(turingx.Left).Goto("back").
		On("back", "0").Move(turingx.Left).Goto("back").
		On("back", "1").Move(turingx.Left).Goto("back").
		On("back", "_").Goto("qf").
		MustBuild()
}

// GenInput returns a binary string of n alternating digits.
func GenInput(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprint(i % 2))
	}
	return sb.String()
}

// GenWideTable creates n states chained on the blank symbol; the machine
// never halts.
func GenWideTable(n int) turingx.Table {
	if n < 1 {
		n = 1
	}
	b := turingx.NewTableBuilder()
	for i := 0; i < n; i++ {
		state := turingx.StateID(fmt.Sprintf("s%d", i))
		next := turingx.StateID(fmt.Sprintf("s%d", (i+1)%n))
		b.On(state, "_").Write("x").Goto(next)
		b.On(state, "x").Goto(next)
	}
	return b.MustBuild()
}
