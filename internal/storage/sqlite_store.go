package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/logger"
	"github.com/julianstephens/coachdesk/internal/models"
)

// schemaVersion is stored in PRAGMA user_version.
const schemaVersion = 1

var schema = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id        TEXT PRIMARY KEY,
		position  INTEGER NOT NULL,
		date      TEXT NOT NULL,
		client_id TEXT NOT NULL,
		status    TEXT NOT NULL,
		payload   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_client ON sessions(client_id)`,
}

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.applySchema(); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) applySchema() error {
	current, err := s.userVersion()
	if err != nil {
		return err
	}
	if current > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, schemaVersion)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	if current < schemaVersion {
		logger.Info("Applied database schema", "from", current, "to", schemaVersion)
	}
	return nil
}

func (s *SQLiteStore) validateSchemaVersion() error {
	current, err := s.userVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current != schemaVersion {
		return fmt.Errorf("database schema version %d does not match expected version %d, run '%s init'", current, schemaVersion, constants.AppName)
	}
	return nil
}

func (s *SQLiteStore) userVersion() (int, error) {
	var v int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingWorkdayStart:
			settings.WorkdayStart = value
		case constants.SettingWorkdayEnd:
			settings.WorkdayEnd = value
		case constants.SettingSlotStrideMin:
			n, err := strconv.Atoi(value)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.SlotStrideMin = n
		case constants.SettingBlackoutSlots:
			if err := json.Unmarshal([]byte(value), &settings.BlackoutSlots); err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		case constants.SettingAvailabilityMode:
			settings.AvailabilityMode = models.AvailabilityMode(value)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	blackout, err := json.Marshal(settings.BlackoutSlots)
	if err != nil {
		return fmt.Errorf("failed to serialize blackout slots: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	values := [][2]string{
		{constants.SettingWorkdayStart, settings.WorkdayStart},
		{constants.SettingWorkdayEnd, settings.WorkdayEnd},
		{constants.SettingSlotStrideMin, strconv.Itoa(settings.SlotStrideMin)},
		{constants.SettingBlackoutSlots, string(blackout)},
		{constants.SettingAvailabilityMode, string(settings.AvailabilityMode)},
	}
	for _, kv := range values {
		if _, err := stmt.Exec(kv[0], kv[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadSessions returns the stored sessions in the order they were saved.
func (s *SQLiteStore) LoadSessions() ([]models.Session, error) {
	rows, err := s.db.Query("SELECT id, payload FROM sessions ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		var session models.Session
		if err := json.Unmarshal([]byte(payload), &session); err != nil {
			return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// SaveSessions replaces the stored collection with sessions in one transaction.
func (s *SQLiteStore) SaveSessions(sessions []models.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sessions (id, position, date, client_id, status, payload)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, session := range sessions {
		payload, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
		}
		if _, err := stmt.Exec(session.ID, i, session.Date, session.ClientID, string(session.Status), string(payload)); err != nil {
			return fmt.Errorf("failed to save session %s: %w", session.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.Debug("Saved sessions", "count", len(sessions), "path", s.path)
	return nil
}

// GetConfigPath returns the path to the database file.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the open handle for backups.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
