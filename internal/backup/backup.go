package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/logger"
)

const timestampFormat = "20060102-150405"

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots the data file into a sibling backups directory and keeps
// the newest constants.MaxBackups copies. SQLite files are copied with
// VACUUM INTO, JSON documents byte for byte.
type Manager struct {
	dataPath  string
	backupDir string
	suffix    string
	keep      int
	now       func() time.Time
}

// NewManager creates a new backup manager
func NewManager(dataPath string) *Manager {
	suffix := constants.BackupFileSuffix
	if strings.EqualFold(filepath.Ext(dataPath), ".json") {
		suffix = ".json"
	}
	return &Manager{
		dataPath:  dataPath,
		backupDir: filepath.Join(filepath.Dir(dataPath), constants.BackupDirName),
		suffix:    suffix,
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) isSQLite() bool {
	return m.suffix == constants.BackupFileSuffix
}

// CreateBackup creates a new backup and rotates old ones
func (m *Manager) CreateBackup() (string, error) {
	path, err := m.createBackup()
	if err != nil {
		return "", err
	}
	if err := m.rotateBackups(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) createBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dataPath); os.IsNotExist(err) {
		return "", fmt.Errorf("data file does not exist: %s", m.dataPath)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}

	if m.isSQLite() {
		err = vacuumInto(m.dataPath, backupPath)
	} else {
		err = copyFile(m.dataPath, backupPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", m.dataPath, err)
	}

	logger.Info("Created backup", "path", backupPath)
	return backupPath, nil
}

// nextBackupPath names the backup after the current second, adding a counter on collision.
func (m *Manager) nextBackupPath() (string, error) {
	stamp := m.now().Format(timestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, m.suffix))
	}
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		logger.Debug("VACUUM INTO failed, falling back to file copy", "error", err)
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

// ListBackups returns all backups, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)
		// drop the collision counter: YYYYMMDD-HHMMSS-N
		if parts := strings.Split(stamp, "-"); len(parts) == 3 {
			stamp = parts[0] + "-" + parts[1]
		}
		timestamp, err := time.ParseInLocation(timestampFormat, stamp, time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		logger.Debug("Removed old backup", "path", backups[i].Path)
	}

	return nil
}

// RestoreBackup replaces the data file with backupPath. The current file is
// backed up first; that safety copy is exempt from rotation.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if m.isSQLite() {
		if err := verifyDatabase(backupPath); err != nil {
			return fmt.Errorf("backup file is corrupted or invalid: %w", err)
		}
	}

	if _, err := os.Stat(m.dataPath); err == nil {
		current, err := m.createBackup()
		if err != nil {
			return fmt.Errorf("failed to back up current data before restore: %w", err)
		}
		logger.Info("Backed up current data before restore", "path", current)
	}

	tempPath := m.dataPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dataPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return fmt.Errorf("failed to restore data file: %w", err)
	}

	return nil
}

func verifyDatabase(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
