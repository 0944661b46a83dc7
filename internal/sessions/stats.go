package sessions

import "github.com/julianstephens/coachdesk/internal/models"

// Stats aggregates the collection. The average rating covers completed sessions
// with feedback; total hours cover every session regardless of status.
func (s *Store) Stats() models.SessionStats {
	stats := models.SessionStats{
		Total:       len(s.sessions),
		ByStatus:    make(map[models.SessionStatus]int),
		MethodUsage: make(map[string]int),
	}

	var ratingSum, minutes int
	for _, session := range s.sessions {
		stats.ByStatus[session.Status]++
		minutes += session.DurationMin
		if session.Method != nil {
			stats.MethodUsage[session.Method.ID]++
		}
		if session.Status == models.SessionStatusCompleted &&
			session.Completion != nil && session.Completion.Feedback != nil {
			ratingSum += session.Completion.Feedback.Rating
			stats.RatedSessions++
		}
	}

	if stats.RatedSessions > 0 {
		stats.AverageRating = float64(ratingSum) / float64(stats.RatedSessions)
	}
	stats.TotalHours = float64(minutes) / 60
	return stats
}
