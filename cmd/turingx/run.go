package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/batch"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		rules   []string
		blank   string
		initial string
		final   []string
	)

	cmd := &cobra.Command{
		Use:   "run --rule STATE,SYMBOL=NEXT,WRITE,DIR... [INPUT...]",
		Short: "Run a machine given as rules on each input.",
		Example: `  turingx run --final qf \
    --rule q0,0=q0,1,R --rule q0,1=q0,0,L --rule q0,_=qf,1,R 0 1 11`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := parseRuleFlags(rules)
			if err != nil {
				return err
			}

			finals := make([]turingx.StateID, len(final))
			for i, f := range final {
				finals[i] = turingx.StateID(f)
			}

			factory := func() *turingx.Machine {
				return turingx.NewMachine(table,
					turingx.WithBlank(turingx.Symbol(blank)),
					turingx.WithInitial(turingx.StateID(initial)),
					turingx.WithFinal(finals...),
					turingx.WithLogger(opts.log),
				)
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = []string{""}
			}
			results, err := batch.Run(cmd.Context(), factory, inputs, batch.Config{
				MaxSteps: opts.maxSteps,
				Workers:  opts.workers,
			})
			if err != nil {
				return err
			}

			return opts.emit(cmd, results, func(w io.Writer) error {
				for _, r := range results {
					_, err := fmt.Fprintf(w, "input=%q outcome=%s steps=%d %s\n",
						r.Input, r.Run.Outcome, r.Run.Steps, r.Final)
					if err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&rules, "rule", "r", nil, "transition STATE,SYMBOL=NEXT,WRITE,DIR (repeatable)")
	f.StringVar(&blank, "blank", string(turingx.DefaultBlank), "blank symbol")
	f.StringVar(&initial, "initial", string(turingx.DefaultInitial), "initial state")
	f.StringSliceVar(&final, "final", nil, "accepting states")
	_ = cmd.MarkFlagRequired("rule")
	return cmd
}

// parseRuleFlags turns "q0,0=q0,1,R" flags into a table.
func parseRuleFlags(flags []string) (turingx.Table, error) {
	rules := make(map[string][3]string, len(flags))
	for _, flag := range flags {
		idx := strings.LastIndex(flag, "=")
		if idx < 0 {
			return nil, fmt.Errorf("rule %q: missing '='", flag)
		}
		key, rhs := flag[:idx], flag[idx+1:]

		parts := strings.Split(rhs, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("rule %q: want NEXT,WRITE,DIR", flag)
		}
		if _, dup := rules[key]; dup {
			return nil, fmt.Errorf("rule %q: %w", flag, turingx.ErrDuplicateRule)
		}
		rules[key] = [3]string{parts[0], parts[1], parts[2]}
	}
	return turingx.ParseRules(rules)
}
