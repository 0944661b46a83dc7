package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/julianstephens/coachdesk/internal/errors"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/storage"
)

var fixedNow = time.Date(2025, 8, 4, 8, 0, 0, 0, time.UTC)

// newTestContext returns an initialized context over a JSON store in a temp dir.
func newTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coachdesk.json")
	ctx, out := contextAt(path)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	out.Reset()
	return ctx, out
}

func contextAt(path string) (*Context, *bytes.Buffer) {
	out := &bytes.Buffer{}
	ctx := NewContext(storage.Open(path))
	ctx.Out = out
	ctx.In = strings.NewReader("")
	ctx.Now = func() time.Time { return fixedNow }
	return ctx, out
}

func addCmd(client, date, start, method string) *SessionAddCmd {
	return &SessionAddCmd{
		Client:   client,
		Date:     date,
		Start:    start,
		Method:   method,
		Type:     string(models.SessionTypeCoaching),
		Location: string(models.LocationOffice),
	}
}

func addSession(t *testing.T, ctx *Context, cmd *SessionAddCmd) models.Session {
	t.Helper()
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("session add failed: %v", err)
	}
	list := ctx.Sessions.ForDateKey(cmd.Date)
	for _, s := range list {
		if s.StartTime == cmd.Start {
			return s
		}
	}
	t.Fatalf("added session not found on %s %s", cmd.Date, cmd.Start)
	return models.Session{}
}

func TestInitWithSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coachdesk.json")
	ctx, out := contextAt(path)

	if err := (&InitCmd{Seed: true}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out.String(), "Seeded") {
		t.Errorf("output missing seed notice: %s", out.String())
	}
	seeded := ctx.Sessions.Len()
	if seeded == 0 {
		t.Fatal("expected seeded sessions")
	}

	reloaded, _ := contextAt(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Sessions.Len() != seeded {
		t.Errorf("reloaded %d sessions, want %d", reloaded.Sessions.Len(), seeded)
	}
}

func TestInitTwiceFails(t *testing.T) {
	ctx, _ := newTestContext(t)
	if err := (&InitCmd{}).Run(ctx); err == nil {
		t.Error("expected error on second init")
	}
}

func TestSessionAdd(t *testing.T) {
	ctx, out := newTestContext(t)

	s := addSession(t, ctx, addCmd("c-1001", "2025-08-05", "10:00", "grow-modell"))

	if s.EndTime != "11:00" {
		t.Errorf("end = %s, want 11:00", s.EndTime)
	}
	if s.Title != "GROW-Modell" {
		t.Errorf("title = %q, want method name", s.Title)
	}
	if s.Status != models.SessionStatusScheduled {
		t.Errorf("status = %s, want scheduled", s.Status)
	}
	if !strings.Contains(out.String(), "✓ Scheduled") {
		t.Errorf("output = %q", out.String())
	}

	reloaded, _ := contextAt(ctx.Store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if _, err := reloaded.Sessions.Get(s.ID); err != nil {
		t.Errorf("session not persisted: %v", err)
	}
}

func TestSessionAddExplicitValuesWin(t *testing.T) {
	ctx, _ := newTestContext(t)

	cmd := addCmd("c-1002", "2025-08-05", "14:00", "systemisches-coaching")
	cmd.Title = "Teamkonflikt"
	cmd.Duration = 45
	s := addSession(t, ctx, cmd)

	if s.Title != "Teamkonflikt" {
		t.Errorf("title = %q, want explicit title", s.Title)
	}
	if s.DurationMin != 45 || s.EndTime != "14:45" {
		t.Errorf("duration/end = %d/%s, want 45/14:45", s.DurationMin, s.EndTime)
	}
}

func TestSessionAddMissingFields(t *testing.T) {
	ctx, _ := newTestContext(t)

	err := addCmd("", "2025-08-05", "10:00", "").Run(ctx)
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ctx.Sessions.Len() != 0 {
		t.Errorf("invalid draft was stored")
	}
}

func TestSessionAddWarnsOnTakenSlot(t *testing.T) {
	ctx, out := newTestContext(t)

	addSession(t, ctx, addCmd("c-1001", "2025-08-05", "10:00", "grow-modell"))
	ctx.Settings.AvailabilityMode = models.AvailabilityConflictAware
	if err := ctx.Store.SaveSettings(ctx.Settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	out.Reset()

	addSession(t, ctx, addCmd("c-1002", "2025-08-05", "10:30", "grow-modell"))
	if !strings.Contains(out.String(), "not a free slot") {
		t.Errorf("expected slot warning, got %q", out.String())
	}
}

func TestSessionLifecycle(t *testing.T) {
	ctx, out := newTestContext(t)
	s := addSession(t, ctx, addCmd("c-1001", "2025-08-05", "10:00", "grow-modell"))

	if err := (&SessionRescheduleCmd{ID: s.ID, Date: "2025-08-07", Time: "15:00"}).Run(ctx); err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	got, _ := ctx.Sessions.Get(s.ID)
	if got.Date != "2025-08-07" || got.StartTime != "15:00" || got.EndTime != "16:00" {
		t.Errorf("rescheduled to %s %s-%s", got.Date, got.StartTime, got.EndTime)
	}
	if got.Status != models.SessionStatusRescheduled {
		t.Errorf("status = %s, want rescheduled", got.Status)
	}

	complete := &SessionCompleteCmd{ID: s.ID, Summary: "Ziele geklärt", Rating: 5, Comment: "Sehr hilfreich"}
	if err := complete.Run(ctx); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	got, _ = ctx.Sessions.Get(s.ID)
	if got.Status != models.SessionStatusCompleted || got.Completion == nil {
		t.Fatalf("session not completed: %+v", got)
	}
	if got.Completion.Feedback == nil || got.Completion.Feedback.Rating != 5 {
		t.Errorf("feedback not recorded: %+v", got.Completion.Feedback)
	}

	out.Reset()
	err := (&SessionCancelCmd{ID: s.ID, Reason: "Krank"}).Run(ctx)
	if !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Errorf("cancel after complete: got %v, want invalid transition", err)
	}
}

func TestSessionCancelAppendsReason(t *testing.T) {
	ctx, _ := newTestContext(t)
	cmd := addCmd("c-1001", "2025-08-05", "10:00", "grow-modell")
	cmd.Notes = "Erstgespräch"
	s := addSession(t, ctx, cmd)

	if err := (&SessionCancelCmd{ID: s.ID, Reason: "Krank"}).Run(ctx); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	got, _ := ctx.Sessions.Get(s.ID)
	if got.Status != models.SessionStatusCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}
	if got.Notes != "Erstgespräch\nAbgesagt: Krank" {
		t.Errorf("notes = %q", got.Notes)
	}
}

func TestSessionUnknownID(t *testing.T) {
	ctx, _ := newTestContext(t)

	tests := []struct {
		name string
		run  func() error
	}{
		{"show", func() error { return (&SessionShowCmd{ID: "nope"}).Run(ctx) }},
		{"no-show", func() error { return (&SessionNoShowCmd{ID: "nope"}).Run(ctx) }},
		{"delete", func() error { return (&SessionDeleteCmd{ID: "nope"}).Run(ctx) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, apperrors.ErrNotFound) {
				t.Errorf("got %v, want not found", err)
			}
		})
	}
}

func TestSessionList(t *testing.T) {
	ctx, out := newTestContext(t)
	addSession(t, ctx, addCmd("c-1001", "2025-08-05", "10:00", "grow-modell"))
	addSession(t, ctx, addCmd("c-1002", "2025-08-06", "09:00", "grow-modell"))

	out.Reset()
	if err := (&SessionListCmd{Client: "c-1002"}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.Count(out.String(), "2025-08-0") != 1 || !strings.Contains(out.String(), "2025-08-06") {
		t.Errorf("client filter output = %q", out.String())
	}

	out.Reset()
	if err := (&SessionListCmd{Status: "completed"}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No sessions found") {
		t.Errorf("status filter output = %q", out.String())
	}
}

func TestSlots(t *testing.T) {
	ctx, out := newTestContext(t)
	addSession(t, ctx, addCmd("c-1001", "2025-08-05", "10:00", "grow-modell"))

	out.Reset()
	if err := (&SlotsCmd{Date: "2025-08-05", Mode: string(models.AvailabilityConflictAware)}).Run(ctx); err != nil {
		t.Fatalf("slots failed: %v", err)
	}
	got := out.String()
	for _, taken := range []string{"10:00", "10:30"} {
		if strings.Contains(got, taken) {
			t.Errorf("slot %s should be taken: %q", taken, got)
		}
	}
	for _, free := range []string{"09:30", "11:00"} {
		if !strings.Contains(got, free) {
			t.Errorf("slot %s should be free: %q", free, got)
		}
	}

	if err := (&SlotsCmd{Date: "2025-08-05", Mode: "bogus"}).Run(ctx); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestRecommend(t *testing.T) {
	ctx, out := newTestContext(t)

	cmd := &RecommendCmd{Goals: "Ich möchte meine Führungskompetenzen entwickeln"}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	got := out.String()
	grow := strings.Index(got, "grow-modell")
	lead := strings.Index(got, "fuehrungskraefte-coaching")
	if grow < 0 || lead < 0 || grow > lead {
		t.Errorf("unexpected recommendation order: %q", got)
	}

	if err := (&RecommendCmd{}).Validate(); err == nil {
		t.Error("expected validation error without client or goals")
	}
}

func TestValidateStrict(t *testing.T) {
	ctx, _ := newTestContext(t)
	addSession(t, ctx, addCmd("c-1001", "2025-08-05", "10:00", "grow-modell"))

	if err := (&ValidateCmd{Strict: true}).Run(ctx); err != nil {
		t.Fatalf("clean data should validate: %v", err)
	}

	addSession(t, ctx, addCmd("c-1002", "2025-08-05", "10:30", "grow-modell"))
	if err := (&ValidateCmd{Strict: true}).Run(ctx); err == nil {
		t.Error("expected strict validation to fail on overlap")
	}
}

func TestParseDate(t *testing.T) {
	ctx, _ := contextAt(filepath.Join(t.TempDir(), "x.json"))

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "2025-08-04", false},
		{"today", "2025-08-04", false},
		{"Tomorrow", "2025-08-05", false},
		{"2025-12-24", "2025-12-24", false},
		{"24.12.2025", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ctx.parseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Format("2006-01-02") != tt.want {
				t.Errorf("got %s, want %s", got.Format("2006-01-02"), tt.want)
			}
		})
	}
}
