package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/logging"
)

// Flags that may be defaulted from the environment or a .env file.
var envFlags = map[string]string{
	"max-steps": "TURINGX_MAX_STEPS",
	"log-level": "TURINGX_LOG_LEVEL",
	"format":    "TURINGX_FORMAT",
	"workers":   "TURINGX_WORKERS",
}

type options struct {
	envFile  string
	maxSteps int
	logLevel string
	format   string
	workers  int
	verbose  bool

	log *slog.Logger
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "turingx",
		Short: "Simulate single-tape deterministic Turing machines.",
		Long: `turingx runs single-tape Turing machines given as transition ` +
			`rules and reports the final tape, head and state. It ships the ` +
			`binary increment scenario and a step-by-step trace of it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", ".env", "file with TURINGX_* defaults")
	pf.IntVar(&opts.maxSteps, "max-steps", turingx.DefaultMaxSteps, "step budget per run")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	pf.StringVar(&opts.format, "format", "text", "output format: text, yaml or json")
	pf.IntVar(&opts.workers, "workers", 0, "parallel machines (0 = GOMAXPROCS)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "dump results to stderr")

	rootCmd.AddCommand(
		newIncrementCmd(opts),
		newTraceCmd(opts),
		newRunCmd(opts),
	)
	return rootCmd
}

func (o *options) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", o.envFile, err)
	}

	flags := cmd.Flags()
	for name, key := range envFlags {
		if flags.Changed(name) {
			continue
		}
		if v, ok := os.LookupEnv(key); ok {
			if err := flags.Set(name, v); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}

	if err := logging.SetLevel(o.logLevel); err != nil {
		return err
	}
	if lv := logging.Level(); o.verbose && lv.Level() > slog.LevelInfo {
		lv.Set(slog.LevelInfo)
	}
	o.log = logging.New(cmd.ErrOrStderr(), nil)
	o.log.Debug("configured",
		"maxSteps", o.maxSteps,
		"format", o.format,
		"workers", o.workers,
	)
	return nil
}

// emit writes v in the selected format; text falls back to the given
// printer.
func (o *options) emit(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	if o.verbose {
		pretty.Fprintf(cmd.ErrOrStderr(), "%# v\n", v)
	}

	switch o.format {
	case "", "text":
		return text(w)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown format %q", o.format)
}
