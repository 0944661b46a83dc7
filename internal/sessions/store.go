package sessions

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/coachdesk/internal/errors"
	"github.com/julianstephens/coachdesk/internal/logger"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// Store is the authoritative in-memory session collection. Every mutation goes
// through its methods so a database-backed implementation can replace it later.
//
// Concurrency note: Store is not safe for concurrent use by multiple goroutines
// without external synchronization.
type Store struct {
	sessions []models.Session
	now      func() time.Time
	newID    func() string
}

type Option func(*Store)

// WithClock overrides the time source used for creation and update timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source used when an added session has no id.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates a store holding a copy of initial.
func New(initial []models.Session, opts ...Option) *Store {
	s := &Store{
		sessions: make([]models.Session, len(initial)),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	copy(s.sessions, initial)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add assigns an id when absent and appends the session.
func (s *Store) Add(session models.Session) (models.Session, error) {
	if session.ID == "" {
		session.ID = s.newID()
	}
	if s.find(session.ID) >= 0 {
		return models.Session{}, fmt.Errorf("session already exists: %s", session.ID)
	}
	if session.Status == "" {
		session.Status = models.SessionStatusScheduled
	}
	if session.EndTime == "" && session.StartTime != "" && session.DurationMin > 0 {
		end, err := utils.AddMinutes(session.StartTime, session.DurationMin)
		if err != nil {
			return models.Session{}, &errors.ValidationError{Fields: []string{"startTime"}, Reason: err.Error()}
		}
		session.EndTime = end
	}
	now := s.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = session.CreatedAt
	}

	s.sessions = append(s.sessions, session)
	logger.Debug("Session added", "id", session.ID, "client", session.ClientID, "date", session.Date, "start", session.StartTime)
	return session, nil
}

// Patch carries the fields Update merges into a session. Nil fields are left alone.
// Status is deliberately absent: status only changes through the lifecycle operations.
type Patch struct {
	ClientID    *string
	Date        *string
	StartTime   *string
	DurationMin *int
	Title       *string
	Type        *models.SessionType
	Location    *models.Location
	Notes       *string
	Reminder    *models.Reminder
	Method      *models.MethodSnapshot
	ClearMethod bool
}

// Update merges patch into the session with the given id. The end time is
// re-derived whenever the start time or duration changes.
func (s *Store) Update(id string, patch Patch) (models.Session, error) {
	i := s.find(id)
	if i < 0 {
		return models.Session{}, &errors.NotFoundError{Kind: "session", ID: id}
	}

	updated := s.sessions[i]
	if patch.ClientID != nil {
		updated.ClientID = *patch.ClientID
	}
	if patch.Date != nil {
		if !utils.ValidateDateFormat(*patch.Date) {
			return models.Session{}, &errors.ValidationError{Fields: []string{"date"}, Reason: "invalid date format"}
		}
		updated.Date = *patch.Date
	}
	if patch.StartTime != nil {
		updated.StartTime = *patch.StartTime
	}
	if patch.DurationMin != nil {
		if *patch.DurationMin <= 0 {
			return models.Session{}, &errors.ValidationError{Fields: []string{"duration"}, Reason: "duration must be positive"}
		}
		updated.DurationMin = *patch.DurationMin
	}
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Location != nil {
		updated.Location = *patch.Location
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}
	if patch.Reminder != nil {
		updated.Reminder = *patch.Reminder
	}
	if patch.ClearMethod {
		updated.Method = nil
	} else if patch.Method != nil {
		m := *patch.Method
		updated.Method = &m
	}

	if patch.StartTime != nil || patch.DurationMin != nil {
		end, err := utils.AddMinutes(updated.StartTime, updated.DurationMin)
		if err != nil {
			return models.Session{}, &errors.ValidationError{Fields: []string{"startTime"}, Reason: err.Error()}
		}
		updated.EndTime = end
	}

	updated.UpdatedAt = s.now()
	s.sessions[i] = updated
	logger.Debug("Session updated", "id", id)
	return updated, nil
}

// Delete removes the session with the given id.
func (s *Store) Delete(id string) error {
	i := s.find(id)
	if i < 0 {
		return &errors.NotFoundError{Kind: "session", ID: id}
	}
	s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
	logger.Debug("Session deleted", "id", id)
	return nil
}

func (s *Store) Get(id string) (models.Session, error) {
	i := s.find(id)
	if i < 0 {
		return models.Session{}, &errors.NotFoundError{Kind: "session", ID: id}
	}
	return s.sessions[i], nil
}

// All returns every session in insertion order.
func (s *Store) All() []models.Session {
	out := make([]models.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

func (s *Store) Len() int {
	return len(s.sessions)
}

func (s *Store) find(id string) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}
