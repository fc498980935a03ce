// Package cli provides the cobra command trees for the library and vehicles
// programs. It is a driving adapter: commands call core services through the
// driving ports and never touch storage directly.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/patterns-cli/internal/core/ports/driving"
	"github.com/custodia-labs/patterns-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options carries the persistent flag values a Builder needs.
type Options struct {
	// ConfigDir is the --config-dir flag; empty means the default.
	ConfigDir string

	// Stderr receives log records.
	Stderr io.Writer
}

// Services holds the core services the commands drive.
// Any field may be nil when a program does not use it.
type Services struct {
	Settings  driving.SettingsService
	Library   driving.LibraryManager
	Factories driving.FactoryRegistry

	// Logger reports command loop outcomes.
	Logger *slog.Logger

	// Level is the level of Logger; --verbose lowers it to debug.
	Level *slog.LevelVar
}

// Builder wires services once flags are parsed.
type Builder func(opts Options) (*Services, error)

var (
	builder Builder

	settingsService driving.SettingsService
	libraryManager  driving.LibraryManager
	factoryRegistry driving.FactoryRegistry
	sessionLogger   = logger.Discard()
	logLevel        *slog.LevelVar

	verbose   bool
	configDir string
)

// SetBuilder registers the function that wires services before a command runs.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices injects already-built services.
func SetServices(s *Services) {
	settingsService = s.Settings
	libraryManager = s.Library
	factoryRegistry = s.Factories
	logLevel = s.Level
	sessionLogger = s.Logger
	if sessionLogger == nil {
		sessionLogger = logger.Discard()
	}
}

// NewLogger builds the program logger from the stored settings.
// Colour mode auto is resolved against w.
func NewLogger(settings driving.SettingsService, w io.Writer) (*slog.Logger, *slog.LevelVar, error) {
	current, err := settings.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settings: %w", err)
	}

	level := new(slog.LevelVar)
	level.Set(logger.LevelFor(current.Log.Level))

	log := logger.New(w, logger.Options{
		Level: level,
		Color: current.Log.Color.Enabled(logger.IsTerminal(w)),
	})
	return log, level, nil
}

// addPersistentFlags registers the flags both programs share.
func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.patterns)")
}

// setup runs before every command.
func setup(cmd *cobra.Command, _ []string) error {
	if builder != nil {
		s, err := builder(Options{
			ConfigDir: configDir,
			Stderr:    cmd.ErrOrStderr(),
		})
		if err != nil {
			return fmt.Errorf("failed to initialise: %w", err)
		}
		SetServices(s)
	}

	if verbose && logLevel != nil {
		logLevel.Set(slog.LevelDebug)
	}
	return nil
}
