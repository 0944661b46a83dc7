package sessions

import (
	"strings"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/errors"
	"github.com/julianstephens/coachdesk/internal/logger"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// transitions lists the allowed target statuses per current status.
// Statuses missing from the table are terminal.
var transitions = map[models.SessionStatus][]models.SessionStatus{
	models.SessionStatusScheduled: {
		models.SessionStatusCompleted,
		models.SessionStatusCancelled,
		models.SessionStatusRescheduled,
		models.SessionStatusNoShow,
	},
	models.SessionStatusRescheduled: {
		models.SessionStatusCompleted,
		models.SessionStatusCancelled,
		models.SessionStatusRescheduled,
		models.SessionStatusNoShow,
	},
}

// CanTransition reports whether a session in status from may move to status to.
func CanTransition(from, to models.SessionStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status change is possible.
func IsTerminal(status models.SessionStatus) bool {
	return len(transitions[status]) == 0
}

// CompletionInput is the outcome recorded by Complete.
type CompletionInput struct {
	Summary    string
	Insights   string
	Homework   string
	NextSteps  string
	Reflection string
	Feedback   *models.Feedback
}

func (in CompletionInput) validate() error {
	var fields []string
	if strings.TrimSpace(in.Summary) == "" {
		fields = append(fields, "summary")
	}
	if in.Feedback != nil && (in.Feedback.Rating < 1 || in.Feedback.Rating > 5) {
		fields = append(fields, "feedback.rating")
	}
	if len(fields) > 0 {
		return &errors.ValidationError{Fields: fields, Reason: "invalid completion"}
	}
	return nil
}

// Complete marks the session completed and records its outcome.
func (s *Store) Complete(id string, in CompletionInput) (models.Session, error) {
	i, err := s.transition(id, models.SessionStatusCompleted)
	if err != nil {
		return models.Session{}, err
	}
	if err := in.validate(); err != nil {
		return models.Session{}, err
	}

	now := s.now()
	completion := &models.Completion{
		Summary:     in.Summary,
		Insights:    in.Insights,
		Homework:    in.Homework,
		NextSteps:   in.NextSteps,
		Reflection:  in.Reflection,
		CompletedAt: now,
	}
	if in.Feedback != nil {
		fb := *in.Feedback
		completion.Feedback = &fb
	}

	session := &s.sessions[i]
	session.Status = models.SessionStatusCompleted
	session.Completion = completion
	session.UpdatedAt = now
	logger.Debug("Session completed", "id", id)
	return *session, nil
}

// Reschedule moves the session to newDate and, when newTime is non-empty, to newTime.
// The duration is kept and the end time re-derived.
func (s *Store) Reschedule(id, newDate, newTime string) (models.Session, error) {
	i, err := s.transition(id, models.SessionStatusRescheduled)
	if err != nil {
		return models.Session{}, err
	}
	if !utils.ValidateDateFormat(newDate) {
		return models.Session{}, &errors.ValidationError{Fields: []string{"date"}, Reason: "invalid date format"}
	}

	session := s.sessions[i]
	start := session.StartTime
	if newTime != "" {
		start = newTime
	}
	end, err := utils.AddMinutes(start, session.DurationMin)
	if err != nil {
		return models.Session{}, &errors.ValidationError{Fields: []string{"startTime"}, Reason: err.Error()}
	}

	from := session.Date + " " + session.StartTime
	session.Date = newDate
	session.StartTime = start
	session.EndTime = end
	session.Status = models.SessionStatusRescheduled
	session.UpdatedAt = s.now()
	s.sessions[i] = session
	logger.Debug("Session rescheduled", "id", id, "from", from, "to", newDate+" "+start)
	return session, nil
}

// Cancel marks the session cancelled and appends the reason to its notes.
func (s *Store) Cancel(id, reason string) (models.Session, error) {
	i, err := s.transition(id, models.SessionStatusCancelled)
	if err != nil {
		return models.Session{}, err
	}

	session := &s.sessions[i]
	note := constants.CancelNotePrefix
	if reason = strings.TrimSpace(reason); reason != "" {
		note += ": " + reason
	}
	if session.Notes == "" {
		session.Notes = note
	} else {
		session.Notes += "\n" + note
	}
	session.Status = models.SessionStatusCancelled
	session.UpdatedAt = s.now()
	logger.Debug("Session cancelled", "id", id, "reason", reason)
	return *session, nil
}

// MarkNoShow records that the client did not attend.
func (s *Store) MarkNoShow(id string) (models.Session, error) {
	i, err := s.transition(id, models.SessionStatusNoShow)
	if err != nil {
		return models.Session{}, err
	}

	session := &s.sessions[i]
	session.Status = models.SessionStatusNoShow
	session.UpdatedAt = s.now()
	logger.Debug("Session marked no-show", "id", id)
	return *session, nil
}

// transition resolves id and checks the status change without applying it.
func (s *Store) transition(id string, to models.SessionStatus) (int, error) {
	i := s.find(id)
	if i < 0 {
		return -1, &errors.NotFoundError{Kind: "session", ID: id}
	}
	from := s.sessions[i].Status
	if !CanTransition(from, to) {
		logger.Warn("Rejected status transition", "id", id, "from", from, "to", to)
		return -1, &errors.TransitionError{ID: id, From: string(from), To: string(to)}
	}
	return i, nil
}
