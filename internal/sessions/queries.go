package sessions

import (
	"sort"
	"time"

	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// ForClient returns the client's sessions, newest date first.
func (s *Store) ForClient(clientID string) []models.Session {
	var out []models.Session
	for _, session := range s.sessions {
		if session.ClientID == clientID {
			out = append(out, session)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out
}

// ForDate returns the sessions on day's calendar date, earliest start first.
func (s *Store) ForDate(day time.Time) []models.Session {
	return s.ForDateKey(utils.DateKey(day))
}

// ForDateKey is ForDate for an already formatted YYYY-MM-DD key.
func (s *Store) ForDateKey(key string) []models.Session {
	var out []models.Session
	for _, session := range s.sessions {
		if session.Date == key {
			out = append(out, session)
		}
	}
	sortChronologically(out)
	return out
}

// ForDateRange returns sessions whose date lies within [start, end], both inclusive,
// ordered by date and start time.
func (s *Store) ForDateRange(start, end time.Time) []models.Session {
	from, to := utils.DateKey(start), utils.DateKey(end)
	var out []models.Session
	if to < from {
		return out
	}
	for _, session := range s.sessions {
		// YYYY-MM-DD keys order lexically
		if session.Date >= from && session.Date <= to {
			out = append(out, session)
		}
	}
	sortChronologically(out)
	return out
}

// Chronological returns every session ordered by date and start time.
func (s *Store) Chronological() []models.Session {
	out := s.All()
	sortChronologically(out)
	return out
}

// ByStatus returns sessions with the given status in chronological order.
func (s *Store) ByStatus(status models.SessionStatus) []models.Session {
	var out []models.Session
	for _, session := range s.sessions {
		if session.Status == status {
			out = append(out, session)
		}
	}
	sortChronologically(out)
	return out
}

func sortChronologically(sessions []models.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].StartTime < sessions[j].StartTime
	})
}
