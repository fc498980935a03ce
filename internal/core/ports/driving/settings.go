package driving

import "github.com/custodia-labs/patterns-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLogLevel updates the minimum log level.
	SetLogLevel(level domain.LogLevel) error

	// SetColorMode updates log colouring.
	SetColorMode(mode domain.ColorMode) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are stored.
	ConfigPath() string
}
