package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/production"
	"github.com/comalice/turingx/internal/scenarios"
)

const followBuffer = 64

func newTraceCmd(opts *options) *cobra.Command {
	var (
		limit  int
		carry  bool
		run    bool
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "trace [INPUT]",
		Short: "Print the increment machine's configuration after every step.",
		Long: `trace steps the increment machine at most --limit times and prints ` +
			`every configuration. With --run the machine runs to a halt within ` +
			`--max-steps and --limit only caps the recorded steps. --follow ` +
			`streams each step to stderr as it happens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := scenarios.DefaultTraceInput
			if len(args) == 1 {
				input = args[0]
			}

			enc, err := production.EncoderFor(opts.format)
			if err != nil {
				return err
			}

			build := scenarios.NewIncrement
			if carry {
				build = scenarios.NewCarryIncrement
			}
			withLogger := func(o ...turingx.Option) *turingx.Machine {
				return build(append(o, turingx.WithLogger(opts.log))...)
			}

			var observers []turingx.Observer
			if follow {
				pub, done := startFollow(cmd.ErrOrStderr())
				defer func() {
					_ = pub.Close()
					<-done
					if n := pub.Dropped(); n > 0 {
						opts.log.Warn("follow dropped steps", "dropped", n)
					}
				}()
				observers = append(observers, pub)
			}

			var trace production.Trace
			if run {
				var skipped int
				trace, skipped, err = scenarios.RunTrace(cmd.Context(), input, opts.maxSteps, limit, withLogger, observers...)
				if err != nil {
					return err
				}
				if skipped > 0 {
					opts.log.Info("trace truncated", "machine", trace.MachineID, "skipped", skipped)
				}
			} else {
				trace = scenarios.StepTrace(input, limit, withLogger, observers...)
			}

			if opts.verbose {
				opts.log.Info("trace recorded", "machine", trace.MachineID, "steps", len(trace.Steps))
			}
			return enc.Encode(cmd.OutOrStdout(), trace)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", scenarios.DefaultTraceLimit, "maximum number of steps (recorded steps with --run, 0 = all)")
	cmd.Flags().BoolVar(&carry, "carry", false, "use the carry-propagating table")
	cmd.Flags().BoolVar(&run, "run", false, "run to a halt instead of stepping --limit times")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "stream steps to stderr while running")
	return cmd
}

// startFollow returns a publisher whose events are written to w by a
// separate goroutine. done is closed once the publisher is closed and every
// buffered event has been written.
func startFollow(w io.Writer) (*production.ChannelPublisher, <-chan struct{}) {
	ch := make(chan turingx.StepEvent, followBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for evt := range ch {
			fmt.Fprintf(w, "%s step %d: read=%s %s\n", evt.MachineID, evt.Index, evt.Read, evt.After)
		}
	}()
	return production.NewChannelPublisher(ch), done
}
