package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/storage"
)

func seedSessions(ids ...string) []models.Session {
	out := make([]models.Session, len(ids))
	for i, id := range ids {
		out[i] = models.Session{
			ID:          id,
			ClientID:    "c-1001",
			Date:        "2025-08-12",
			StartTime:   "10:00",
			EndTime:     "11:00",
			DurationMin: 60,
			Title:       "Sitzung " + id,
			Status:      models.SessionStatusScheduled,
		}
	}
	return out
}

// setupStore creates an initialized provider at path holding the given sessions.
func setupStore(t *testing.T, path string, sessions []models.Session) {
	t.Helper()
	store := storage.Open(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := store.SaveSessions(sessions); err != nil {
		t.Fatalf("SaveSessions failed: %v", err)
	}
}

func loadIDs(t *testing.T, path string) []string {
	t.Helper()
	store := storage.Open(path)
	defer store.Close()
	if err := store.Load(); err != nil {
		t.Fatalf("Load %s failed: %v", path, err)
	}
	sessions, err := store.LoadSessions()
	if err != nil {
		t.Fatalf("LoadSessions failed: %v", err)
	}
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}

func newTestManager(path string, start time.Time) *Manager {
	mgr := NewManager(path)
	tick := start
	mgr.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	return mgr
}

func TestCreateBackup(t *testing.T) {
	for _, name := range []string{"coachdesk.db", "coachdesk.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			setupStore(t, path, seedSessions("s-1", "s-2"))

			mgr := NewManager(path)
			backupPath, err := mgr.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup failed: %v", err)
			}
			if filepath.Dir(backupPath) != mgr.GetBackupDir() {
				t.Errorf("backup written outside %s: %s", mgr.GetBackupDir(), backupPath)
			}
			if filepath.Ext(backupPath) != filepath.Ext(name) {
				t.Errorf("expected %s backup, got %s", filepath.Ext(name), backupPath)
			}

			if ids := loadIDs(t, backupPath); len(ids) != 2 {
				t.Errorf("expected 2 sessions in backup, got %v", ids)
			}
		})
	}
}

func TestCreateBackup_MissingDataFile(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing data file")
	}
}

func TestCreateBackup_SameSecondGetsCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coachdesk.db")
	setupStore(t, path, seedSessions("s-1"))

	mgr := NewManager(path)
	fixed := time.Date(2025, 8, 12, 10, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first CreateBackup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct backup paths, got %s twice", first)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if !b.Timestamp.Equal(fixed) {
			t.Errorf("expected timestamp %v, got %v", fixed, b.Timestamp)
		}
	}
}

func TestListBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coachdesk.db")
	setupStore(t, path, seedSessions("s-1"))
	mgr := newTestManager(path, time.Date(2025, 8, 12, 10, 0, 0, 0, time.Local))

	if backups, err := mgr.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("expected no backups before the first run, got %v (%v)", backups, err)
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
	}
	// foreign files are ignored
	if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i-1].Timestamp.After(backups[i].Timestamp) {
			t.Errorf("backups not sorted newest first: %v before %v", backups[i-1].Timestamp, backups[i].Timestamp)
		}
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestRotateBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coachdesk.json")
	setupStore(t, path, seedSessions("s-1"))
	mgr := newTestManager(path, time.Date(2025, 8, 12, 10, 0, 0, 0, time.Local))
	mgr.keep = 3

	var newest string
	for i := 0; i < 5; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
		newest = p
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups after rotation, got %d", len(backups))
	}
	if backups[0].Path != newest {
		t.Errorf("expected newest backup %s to survive, got %s", newest, backups[0].Path)
	}
}

func TestRestoreBackup(t *testing.T) {
	for _, name := range []string{"coachdesk.db", "coachdesk.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			setupStore(t, path, seedSessions("s-1", "s-2"))
			mgr := newTestManager(path, time.Date(2025, 8, 12, 10, 0, 0, 0, time.Local))

			backupPath, err := mgr.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup failed: %v", err)
			}

			// change the live data after the backup
			store := storage.Open(path)
			if err := store.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if err := store.SaveSessions(seedSessions("s-3")); err != nil {
				t.Fatalf("SaveSessions failed: %v", err)
			}
			store.Close()

			if err := mgr.RestoreBackup(backupPath); err != nil {
				t.Fatalf("RestoreBackup failed: %v", err)
			}

			ids := loadIDs(t, path)
			if len(ids) != 2 || ids[0] != "s-1" || ids[1] != "s-2" {
				t.Errorf("expected restored sessions [s-1 s-2], got %v", ids)
			}

			// the pre-restore state is kept as its own backup
			backups, err := mgr.ListBackups()
			if err != nil {
				t.Fatalf("ListBackups failed: %v", err)
			}
			if len(backups) != 2 {
				t.Fatalf("expected original plus safety backup, got %d", len(backups))
			}
			if ids := loadIDs(t, backups[0].Path); len(ids) != 1 || ids[0] != "s-3" {
				t.Errorf("expected safety backup to hold [s-3], got %v", ids)
			}
		})
	}
}

func TestRestoreBackup_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coachdesk.db")
	setupStore(t, path, seedSessions("s-1"))
	mgr := NewManager(path)

	if err := mgr.RestoreBackup(filepath.Join(dir, "nope.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	garbage := filepath.Join(dir, "garbage.db")
	if err := os.WriteFile(garbage, []byte("definitely not sqlite"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := mgr.RestoreBackup(garbage); err == nil {
		t.Error("expected error for corrupt backup")
	}
	if ids := loadIDs(t, path); len(ids) != 1 {
		t.Errorf("live data changed after failed restore: %v", ids)
	}
}
