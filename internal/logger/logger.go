// Package logger builds the console logging handle used by both programs.
//
// There is no package-level logger. Each program builds one *slog.Logger at
// start-up with New and passes it to the components that report through it.
// Records are rendered one per line as
//
//	[INFO] message key=value
//
// with the level tag optionally coloured.
package logger

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
)

// Options configures a console logger.
type Options struct {
	// Level is the minimum level written. Defaults to slog.LevelInfo.
	// Pass a *slog.LevelVar to change it after the logger is built.
	Level slog.Leveler

	// Color enables coloured level tags.
	Color bool
}

// New returns a logger writing console lines to w.
func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(NewConsoleHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// LevelFor maps a configured log level onto slog.
// Unknown levels map to slog.LevelInfo.
func LevelFor(level domain.LogLevel) slog.Level {
	switch level {
	case domain.LogLevelDebug:
		return slog.LevelDebug
	case domain.LogLevelWarn:
		return slog.LevelWarn
	case domain.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsTerminal reports whether w is a terminal.
// Anything other than an *os.File is never a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
