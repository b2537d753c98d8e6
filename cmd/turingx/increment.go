package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/batch"
	"github.com/comalice/turingx/internal/scenarios"
)

func newIncrementCmd(opts *options) *cobra.Command {
	var carry bool

	cmd := &cobra.Command{
		Use:   "increment [INPUT...]",
		Short: "Run the binary increment machine on each input.",
		Long: "Runs the three-rule increment table on each input (default " +
			"0 1 11 101). --carry selects the table that scans to the least " +
			"significant digit first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				inputs = scenarios.DefaultInputs
			}

			build := scenarios.NewIncrement
			if carry {
				build = scenarios.NewCarryIncrement
			}
			factory := func() *turingx.Machine {
				return build(turingx.WithLogger(opts.log))
			}

			results, err := batch.Run(cmd.Context(), factory, inputs, batch.Config{
				MaxSteps: opts.maxSteps,
				Workers:  opts.workers,
			})
			if err != nil {
				return err
			}

			reports := make([]scenarios.Report, len(results))
			for i, r := range results {
				reports[i] = scenarios.Report{
					Input:    r.Input,
					Output:   r.Final.Tape,
					Accepted: r.Run.Accepted,
					Steps:    r.Run.Steps,
				}
			}

			return opts.emit(cmd, reports, func(w io.Writer) error {
				for _, r := range reports {
					if _, err := fmt.Fprintf(w, "Input: %s\nOutput: %s\nSteps: %d\n\n", r.Input, r.Output, r.Steps); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&carry, "carry", false, "use the carry-propagating table")
	return cmd
}
