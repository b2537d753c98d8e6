// Package logging builds the slog loggers used by the turingx commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

// Level is the level shared by every logger built by New.
func Level() *slog.LevelVar {
	return level
}

// SetLevel accepts debug, info, warn or error.
func SetLevel(name string) error {
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(name)))); err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	return nil
}

// New returns a logger writing text records to w and, when jsonW is
// non-nil, JSON records to jsonW.
func New(w io.Writer, jsonW io.Writer) *slog.Logger {
	var handlers []slog.Handler

	if w != nil {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}))
	}
	if jsonW != nil {
		handlers = append(handlers, slog.NewJSONHandler(jsonW, &slog.HandlerOptions{
			Level: level,
		}))
	}
	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slogmulti.Fanout(handlers...))
}
