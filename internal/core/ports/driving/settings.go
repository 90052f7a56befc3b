package driving

import "github.com/custodia-labs/capseek/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Set updates one setting by its dotted key (e.g. "search.min_score").
	Set(key, value string) error

	// SetSourceEnabled enables or disables a source.
	SetSourceEnabled(source domain.Source, enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// ConfigPath returns the configuration file path.
	ConfigPath() string
}
