package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
)

// newSettingsCmd creates the settings command tree for a program.
func newSettingsCmd(program string) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage application settings",
		Long: `View and configure logging settings.

Settings are shared by the library and vehicles programs and stored in
config.toml inside the configuration directory.`,
		RunE: runSettingsShow,
	}

	settingsShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE:  runSettingsShow,
	}

	settingsLevelCmd := &cobra.Command{
		Use:   "level [level]",
		Short: "Set the log level",
		Long: `Set the minimum level of log records written to stderr.

Available levels: ` + joinLevels() + `

--verbose overrides this for a single run of ` + program + `.`,
		Args: cobra.ExactArgs(1),
		RunE: runSettingsLevel,
	}

	settingsColorCmd := &cobra.Command{
		Use:   "color [mode]",
		Short: "Set log colouring",
		Long: `Control whether log level tags are coloured.

Available modes:
  auto   - Colour when writing to a terminal
  always - Always colour
  never  - Never colour`,
		Args: cobra.ExactArgs(1),
		RunE: runSettingsColor,
	}

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLevelCmd)
	settingsCmd.AddCommand(settingsColorCmd)
	return settingsCmd
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Level: %s\n", settings.Log.Level)
	cmd.Printf("  Color: %s\n", settings.Log.Color.Description())
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsLevel(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	level, ok := domain.ParseLogLevel(args[0])
	if !ok {
		return fmt.Errorf("invalid log level %q (available: %s)", args[0], joinLevels())
	}

	if err := settingsService.SetLogLevel(level); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}

	cmd.Printf("Log level set to: %s\n", level)
	return nil
}

func runSettingsColor(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	mode := domain.ColorMode(strings.ToLower(strings.TrimSpace(args[0])))
	if err := settingsService.SetColorMode(mode); err != nil {
		return fmt.Errorf("failed to set colour mode: %w", err)
	}

	cmd.Printf("Log colour set to: %s\n", mode.Description())
	return nil
}

func joinLevels() string {
	levels := domain.AllLogLevels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	return strings.Join(names, ", ")
}
