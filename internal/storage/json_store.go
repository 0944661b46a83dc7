package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/models"
)

const jsonStoreVersion = 1

// Document is the on-disk layout of a JSON store: one record per session.
type Document struct {
	Version  int              `json:"version"`
	Settings models.Settings  `json:"settings"`
	Sessions []models.Session `json:"sessions"`
}

type JSONStore struct {
	path string
	doc  *Document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &Document{
		Version:  jsonStoreVersion,
		Settings: models.DefaultSettings(),
		Sessions: []models.Session{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > jsonStoreVersion {
		return fmt.Errorf("storage version %d is newer than supported version %d", doc.Version, jsonStoreVersion)
	}
	if doc.Sessions == nil {
		doc.Sessions = []models.Session{}
	}
	s.doc = doc

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write through a sibling file and rename into place
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) LoadSessions() ([]models.Session, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	sessions := make([]models.Session, len(s.doc.Sessions))
	copy(sessions, s.doc.Sessions)
	return sessions, nil
}

func (s *JSONStore) SaveSessions(sessions []models.Session) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Sessions = make([]models.Session, len(sessions))
	copy(s.doc.Sessions, sessions)
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without external
//     synchronization.
//   - Running multiple coachdesk processes that share the same storage path at the
//     same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
