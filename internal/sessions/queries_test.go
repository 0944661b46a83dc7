package sessions

import (
	"testing"
	"time"

	"github.com/julianstephens/coachdesk/internal/models"
)

func queryFixture() *Store {
	a := sampleSession("s-a", "2025-08-12", "14:00", 60)
	b := sampleSession("s-b", "2025-08-12", "09:00", 60)
	c := sampleSession("s-c", "2025-08-10", "11:00", 60)
	d := sampleSession("s-d", "2025-09-01", "08:00", 60)
	d.ClientID = "c-1002"
	e := sampleSession("s-e", "2025-08-14", "10:00", 60)
	e.Status = models.SessionStatusCancelled
	return newTestStore([]models.Session{a, b, c, d, e})
}

func ids(sessions []models.Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func equalIDs(got []models.Session, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func TestForDate(t *testing.T) {
	store := queryFixture()
	day := time.Date(2025, 8, 12, 17, 45, 0, 0, time.Local)

	got := store.ForDate(day)
	if !equalIDs(got, "s-b", "s-a") {
		t.Errorf("expected [s-b s-a], got %v", ids(got))
	}
	if got := store.ForDateKey("2025-08-11"); len(got) != 0 {
		t.Errorf("expected no sessions, got %v", ids(got))
	}
}

func TestForClient(t *testing.T) {
	store := queryFixture()

	got := store.ForClient("c-1001")
	if !equalIDs(got, "s-e", "s-a", "s-b", "s-c") {
		t.Errorf("expected newest first, got %v", ids(got))
	}
	if got := store.ForClient("c-9999"); len(got) != 0 {
		t.Errorf("expected no sessions for unknown client, got %v", ids(got))
	}
}

func TestForDateRange(t *testing.T) {
	store := queryFixture()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []string
	}{
		{
			name:  "inclusive bounds",
			start: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
			want:  []string{"s-c", "s-b", "s-a", "s-e"},
		},
		{
			name:  "crosses month",
			start: time.Date(2025, 8, 13, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
			want:  []string{"s-e", "s-d"},
		},
		{
			name:  "reversed bounds",
			start: time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.ForDateRange(tt.start, tt.end)
			if !equalIDs(got, tt.want...) {
				t.Errorf("expected %v, got %v", tt.want, ids(got))
			}
		})
	}
}

func TestByStatus(t *testing.T) {
	store := queryFixture()
	if got := store.ByStatus(models.SessionStatusCancelled); !equalIDs(got, "s-e") {
		t.Errorf("expected [s-e], got %v", ids(got))
	}
}

func TestChronological(t *testing.T) {
	store := queryFixture()
	if got := store.Chronological(); !equalIDs(got, "s-c", "s-b", "s-a", "s-e", "s-d") {
		t.Errorf("unexpected order %v", ids(got))
	}
}
