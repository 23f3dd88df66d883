// Package logger configures the diagnostic logger of the sky tool.
//
// Diagnostics go to the standard error so that they never mix with the
// results printed on the standard output.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	base        zerolog.Logger
	initialized bool
)

// Init configures the global logger.
//
// level is one of debug|info|warn|error (default: info). pretty selects a
// human console output instead of JSON lines.
func Init(level string, pretty bool) {
	base = New(os.Stderr, level, pretty)
	initialized = true
}

// New returns a logger writing to w.
func New(w io.Writer, level string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
}

// L returns the global logger. Init should be called once on startup.
func L() *zerolog.Logger {
	if !initialized {
		Init("info", true)
	}
	return &base
}

// ForRun returns a child of l tagged with a new run id, so that the
// diagnostics of concurrent invocations can be told apart.
func ForRun(l zerolog.Logger, command string) zerolog.Logger {
	return l.With().Str("run", uuid.NewString()).Str("cmd", command).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
