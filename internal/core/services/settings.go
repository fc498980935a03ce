package services

import (
	"fmt"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driven"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLogLevel = "log.level"
	keyLogColor = "log.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or unrecognised values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Log: domain.LogSettings{
			Level: s.getLogLevel(defaults.Log.Level),
			Color: s.getColorMode(defaults.Log.Color),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Log.Level.IsValid() {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidInput, settings.Log.Level)
	}
	if !settings.Log.Color.IsValid() {
		return fmt.Errorf("%w: colour mode %q", domain.ErrInvalidInput, settings.Log.Color)
	}

	if err := s.configStore.Set(keyLogLevel, settings.Log.Level.String()); err != nil {
		return fmt.Errorf("save log level: %w", err)
	}
	if err := s.configStore.Set(keyLogColor, settings.Log.Color.String()); err != nil {
		return fmt.Errorf("save log colour: %w", err)
	}

	return nil
}

// SetLogLevel updates the minimum log level.
func (s *SettingsService) SetLogLevel(level domain.LogLevel) error {
	if !level.IsValid() {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidInput, level)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Log.Level = level
	return s.Save(settings)
}

// SetColorMode updates log colouring.
func (s *SettingsService) SetColorMode(mode domain.ColorMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: colour mode %q", domain.ErrInvalidInput, mode)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Log.Color = mode
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are stored.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) getLogLevel(defaultVal domain.LogLevel) domain.LogLevel {
	val := s.configStore.GetString(keyLogLevel)
	if val == "" {
		return defaultVal
	}
	level, ok := domain.ParseLogLevel(val)
	if !ok {
		return defaultVal
	}
	return level
}

func (s *SettingsService) getColorMode(defaultVal domain.ColorMode) domain.ColorMode {
	val := s.configStore.GetString(keyLogColor)
	if val == "" {
		return defaultVal
	}
	mode := domain.ColorMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
