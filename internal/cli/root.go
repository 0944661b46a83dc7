package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/coachdesk/internal/availability"
	"github.com/julianstephens/coachdesk/internal/backup"
	"github.com/julianstephens/coachdesk/internal/catalog"
	"github.com/julianstephens/coachdesk/internal/logger"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/sessions"
	"github.com/julianstephens/coachdesk/internal/storage"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// Context carries the stores every command works on. Catalogs are seeded in
// memory; sessions and settings come from the storage provider.
type Context struct {
	Store    storage.Provider
	Clients  *catalog.ClientStore
	Methods  *catalog.Methods
	Sessions *sessions.Store
	Settings models.Settings

	Out io.Writer
	In  io.Reader
	Now func() time.Time
}

// NewContext wires the seeded catalogs around store.
func NewContext(store storage.Provider) *Context {
	clients, methods := catalog.Default()
	return &Context{
		Store:   store,
		Clients: clients,
		Methods: methods,
		Out:     os.Stdout,
		In:      os.Stdin,
		Now:     time.Now,
	}
}

// Load opens storage and builds the session store from its snapshot.
func (c *Context) Load() error {
	if err := c.Store.Load(); err != nil {
		return err
	}

	settings, err := c.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	c.Settings = settings

	list, err := c.Store.LoadSessions()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	c.Sessions = sessions.New(list, sessions.WithClock(c.Now))
	logger.Debug("Loaded sessions", "count", len(list), "path", c.Store.GetConfigPath())
	return nil
}

// Save writes the session store back to storage.
func (c *Context) Save() error {
	if c.Sessions == nil {
		return fmt.Errorf("sessions not loaded")
	}
	if err := c.Store.SaveSessions(c.Sessions.All()); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}
	return nil
}

// Availability returns a slot generator over the loaded settings and sessions.
func (c *Context) Availability() *availability.Generator {
	return availability.New(availability.FromSettings(c.Settings), c.Sessions)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

func (c *Context) today() time.Time {
	return utils.StartOfDay(c.Now())
}

// parseDate accepts YYYY-MM-DD, "today" and "tomorrow". Empty means today.
func (c *Context) parseDate(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return c.today(), nil
	case "tomorrow":
		return c.today().AddDate(0, 0, 1), nil
	}
	t, err := utils.ParseDate(s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD, 'today' or 'tomorrow')", s)
	}
	return t, nil
}

// clientLabel resolves a client id to a display name, degrading for unknown ids.
func (c *Context) clientLabel(s models.Session) string {
	return c.Clients.Label(s.ClientID)
}

func (c *Context) formatSession(s models.Session) string {
	method := ""
	if s.Method != nil {
		method = fmt.Sprintf(" · %s", s.Method.Name)
	}
	return fmt.Sprintf("%s %s-%s  %-12s %s - %s%s  (%s)",
		s.Date, s.StartTime, s.EndTime, "["+string(s.Status)+"]", c.clientLabel(s), s.Title, method, s.ID)
}
