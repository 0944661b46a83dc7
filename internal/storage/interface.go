package storage

import (
	"strings"

	"github.com/julianstephens/coachdesk/internal/models"
)

// Provider persists snapshots of the session collection and the practice settings.
// The in-memory session store stays authoritative while a command runs; a provider
// is read once at startup and written once on exit.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Sessions
	LoadSessions() ([]models.Session, error)
	SaveSessions([]models.Session) error

	// Utils
	GetConfigPath() string
}

// Open picks the provider for path by its extension: .json selects the JSON
// document store, anything else SQLite.
func Open(path string) Provider {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
