package catalog

import (
	"time"

	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// SeedSessions returns mock sessions placed around ref so a fresh store has
// something to show in the current month.
func SeedSessions(ref time.Time) []models.Session {
	methods := NewMethods(SeedMethods(), nil)
	snapshot := func(id string) *models.MethodSnapshot {
		m, err := methods.Get(id)
		if err != nil {
			return nil
		}
		return m.Snapshot()
	}
	day := func(offset int) string {
		return utils.DateKey(ref.AddDate(0, 0, offset))
	}
	created := utils.StartOfDay(ref).AddDate(0, 0, -14)

	return []models.Session{
		{
			ID:          "s-0001",
			ClientID:    "c-1001",
			Date:        day(-7),
			StartTime:   "09:00",
			EndTime:     "10:30",
			DurationMin: 90,
			Title:       "Führungskräfte-Coaching",
			Type:        models.SessionTypeCoaching,
			Location:    models.LocationOffice,
			Status:      models.SessionStatusCompleted,
			Method:      snapshot(MethodLeadership),
			Reminder:    models.Reminder{Enabled: true, LeadHours: 24},
			Completion: &models.Completion{
				Summary:     "Rollenbild als Teamleitung geschärft.",
				Homework:    "Delegationsliste für die nächste Woche.",
				Feedback:    &models.Feedback{Rating: 5},
				CompletedAt: created.AddDate(0, 0, 7),
			},
			CreatedAt: created,
			UpdatedAt: created.AddDate(0, 0, 7),
		},
		{
			ID:          "s-0002",
			ClientID:    "c-1002",
			Date:        day(-2),
			StartTime:   "14:00",
			EndTime:     "15:00",
			DurationMin: 60,
			Title:       "Stressbewältigung & Resilienz",
			Type:        models.SessionTypeCoaching,
			Location:    models.LocationOnline,
			Status:      models.SessionStatusCancelled,
			Notes:       "Abgesagt: Krankheit",
			Method:      snapshot(MethodStress),
			Reminder:    models.Reminder{Enabled: true, LeadHours: 24},
			CreatedAt:   created,
			UpdatedAt:   created.AddDate(0, 0, 12),
		},
		{
			ID:          "s-0003",
			ClientID:    "c-1001",
			Date:        day(1),
			StartTime:   "10:00",
			EndTime:     "11:00",
			DurationMin: 60,
			Title:       "GROW-Modell",
			Type:        models.SessionTypeFollowUp,
			Location:    models.LocationOffice,
			Status:      models.SessionStatusScheduled,
			Method:      snapshot(MethodGROW),
			Reminder:    models.Reminder{Enabled: true, LeadHours: 24},
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "s-0004",
			ClientID:    "c-1003",
			Date:        day(3),
			StartTime:   "16:00",
			EndTime:     "16:30",
			DurationMin: 30,
			Title:       "Erstgespräch",
			Type:        models.SessionTypeConsultation,
			Location:    models.LocationPhone,
			Status:      models.SessionStatusScheduled,
			Reminder:    models.Reminder{Enabled: false},
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}
}
