// Package batch runs a set of inputs on independent machines in parallel.
package batch

import (
	"context"
	"errors"
	"runtime"

	"github.com/comalice/turingx"
	"gopkg.in/tomb.v2"
)

// Factory builds a fresh machine for one input.
type Factory func() *turingx.Machine

// Result is the outcome of one input.
type Result struct {
	Input     string            `json:"input" yaml:"input"`
	MachineID string            `json:"machineID" yaml:"machineID"`
	Run       turingx.RunResult `json:"run" yaml:"run"`
	Final     turingx.Snapshot  `json:"final" yaml:"final"`
}

// Config are used to configure a batch run.
type Config struct {
	// The step budget of every run.
	MaxSteps int

	// The number of concurrent workers. Defaults to GOMAXPROCS.
	Workers int
}

// Run loads each input onto its own machine and runs it. Results keep the
// order of inputs. Cancelling ctx stops pending runs and returns ctx's error.
func Run(ctx context.Context, factory Factory, inputs []string, config Config) ([]Result, error) {
	if factory == nil {
		return nil, errors.New("batch: nil factory")
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, max(len(inputs), 1))

	results := make([]Result, len(inputs))
	jobs := make(chan int)

	t, tctx := tomb.WithContext(ctx)

	t.Go(func() error {
		for i := 0; i < workers; i++ {
			t.Go(func() error {
				return worker(tctx, factory, inputs, config.MaxSteps, jobs, results)
			})
		}

		defer close(jobs)
		for i := range inputs {
			select {
			case jobs <- i:
			case <-t.Dying():
				return nil
			}
		}
		return nil
	})

	if err := t.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func worker(ctx context.Context, factory Factory, inputs []string, maxSteps int, jobs <-chan int, results []Result) error {
	for idx := range jobs {
		m := factory()
		m.Load(inputs[idx])

		res, err := m.RunContext(ctx, maxSteps)
		if err != nil {
			return err
		}

		results[idx] = Result{
			Input:     inputs[idx],
			MachineID: m.ID(),
			Run:       res,
			Final:     m.Snapshot(),
		}
	}
	return nil
}
