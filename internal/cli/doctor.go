package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/coachdesk/internal/backup"
	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/storage"
	"github.com/julianstephens/coachdesk/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	fail := func(name string, err error) {
		ctx.printf("❌ %s: FAIL\n", name)
		ctx.printf("   Error: %v\n", err)
		hasError = true
	}

	// Check 1: storage reachable
	reachable := false
	if err := checkStorageReachable(ctx); err != nil {
		fail("Storage reachable", err)
	} else {
		ctx.println("✓ Storage reachable: OK")
		reachable = true
	}

	// Checks 2 and 3 need loaded settings and sessions
	if reachable {
		if err := checkAvailabilitySettings(ctx); err != nil {
			fail("Availability settings", err)
		} else {
			ctx.println("✓ Availability settings: OK")
		}

		if conflicts := checkSessions(ctx); conflicts > 0 {
			ctx.println("⚠ Session data: WARNING")
			ctx.printf("   %d conflicts, run '%s validate' for details\n", conflicts, constants.AppName)
		} else {
			ctx.println("✓ Session data: OK")
		}
	} else {
		ctx.println("⊘ Availability settings: SKIPPED (storage not reachable)")
		ctx.println("⊘ Session data: SKIPPED (storage not reachable)")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		ctx.println("⚠ Backups present: WARNING")
		ctx.printf("   %v\n", err)
	} else {
		ctx.println("✓ Backups present: OK")
	}

	// Check 5: clock sanity
	if err := checkClock(ctx.Now()); err != nil {
		fail("Clock", err)
	} else {
		ctx.println("✓ Clock: OK")
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkAvailabilitySettings(ctx *Context) error {
	if _, err := ctx.Availability().Slots(ctx.today()); err != nil {
		return err
	}
	return nil
}

func checkSessions(ctx *Context) int {
	result := validation.New(ctx.Clients, ctx.Settings).ValidateSessions(ctx.Sessions.All())
	return len(result.Conflicts)
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider creating one with '%s backup create'", constants.AppName)
	}

	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
