package sessions

import (
	"math"
	"testing"

	"github.com/julianstephens/coachdesk/internal/models"
)

func TestStats(t *testing.T) {
	grow := &models.MethodSnapshot{ID: "grow", Name: "GROW-Modell"}

	rated := sampleSession("s-1", "2025-08-01", "10:00", 60)
	rated.Status = models.SessionStatusCompleted
	rated.Method = grow
	rated.Completion = &models.Completion{Summary: "gut", Feedback: &models.Feedback{Rating: 5}}

	ratedToo := sampleSession("s-2", "2025-08-02", "10:00", 90)
	ratedToo.Status = models.SessionStatusCompleted
	ratedToo.Method = grow
	ratedToo.Completion = &models.Completion{Summary: "ok", Feedback: &models.Feedback{Rating: 3}}

	unrated := sampleSession("s-3", "2025-08-03", "10:00", 30)
	unrated.Status = models.SessionStatusCompleted
	unrated.Completion = &models.Completion{Summary: "ohne Feedback"}

	cancelled := sampleSession("s-4", "2025-08-04", "10:00", 60)
	cancelled.Status = models.SessionStatusCancelled

	store := newTestStore([]models.Session{rated, ratedToo, unrated, cancelled})
	stats := store.Stats()

	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}
	if stats.ByStatus[models.SessionStatusCompleted] != 3 || stats.ByStatus[models.SessionStatusCancelled] != 1 {
		t.Errorf("unexpected status counts %v", stats.ByStatus)
	}
	if stats.RatedSessions != 2 || math.Abs(stats.AverageRating-4) > 1e-9 {
		t.Errorf("expected average 4 over 2 sessions, got %v over %d", stats.AverageRating, stats.RatedSessions)
	}
	if math.Abs(stats.TotalHours-4) > 1e-9 {
		t.Errorf("expected 4 total hours, got %v", stats.TotalHours)
	}
	if stats.MethodUsage["grow"] != 2 {
		t.Errorf("expected grow used twice, got %v", stats.MethodUsage)
	}
}

func TestStats_Empty(t *testing.T) {
	stats := newTestStore(nil).Stats()
	if stats.Total != 0 || stats.AverageRating != 0 || stats.TotalHours != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
