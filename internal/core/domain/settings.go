package domain

import "strings"

const unknownDescription = "Unknown"

// LogLevel controls which log records are shown.
type LogLevel string

// Available log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// AllLogLevels returns every log level from most to least verbose.
func AllLogLevels() []LogLevel {
	return []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// ParseLogLevel normalises user input into a LogLevel.
// "warning" is accepted as an alias for warn.
func ParseLogLevel(s string) (LogLevel, bool) {
	level := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	if level == "warning" {
		level = LogLevelWarn
	}
	return level, level.IsValid()
}

// IsValid returns true if the log level is recognised.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l LogLevel) String() string {
	return string(l)
}

// ColorMode controls whether log level tags are coloured.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto colours output only when writing to a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways colours output unconditionally.
	ColorAlways ColorMode = "always"

	// ColorNever disables colour.
	ColorNever ColorMode = "never"
)

// AllColorModes returns every colour mode.
func AllColorModes() []ColorMode {
	return []ColorMode{ColorAuto, ColorAlways, ColorNever}
}

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Enabled resolves the mode against whether output is a terminal.
func (m ColorMode) Enabled(isTerminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorAuto:
		return isTerminal
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ColorMode) Description() string {
	switch m {
	case ColorAuto:
		return "Auto (colour when writing to a terminal)"
	case ColorAlways:
		return "Always"
	case ColorNever:
		return "Never"
	default:
		return unknownDescription
	}
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// Level is the minimum level written.
	Level LogLevel

	// Color controls level tag colouring.
	Color ColorMode
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Log holds logging settings.
	Log LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Log: LogSettings{
			Level: LogLevelInfo,
			Color: ColorAuto,
		},
	}
}
