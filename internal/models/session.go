package models

import "time"

type SessionStatus string

const (
	SessionStatusScheduled   SessionStatus = "scheduled"
	SessionStatusCompleted   SessionStatus = "completed"
	SessionStatusCancelled   SessionStatus = "cancelled"
	SessionStatusNoShow      SessionStatus = "no-show"
	SessionStatusRescheduled SessionStatus = "rescheduled"
)

// AllSessionStatuses lists every status in display order.
var AllSessionStatuses = []SessionStatus{
	SessionStatusScheduled,
	SessionStatusRescheduled,
	SessionStatusCompleted,
	SessionStatusCancelled,
	SessionStatusNoShow,
}

type SessionType string

const (
	SessionTypeCoaching     SessionType = "coaching"
	SessionTypeConsultation SessionType = "consultation"
	SessionTypeFollowUp     SessionType = "follow-up"
	SessionTypeWorkshop     SessionType = "workshop"
	SessionTypeAssessment   SessionType = "assessment"
)

type Location string

const (
	LocationOffice Location = "office"
	LocationOnline Location = "online"
	LocationPhone  Location = "phone"
	LocationOnSite Location = "on-site"
)

type Reminder struct {
	Enabled   bool `json:"enabled"`
	LeadHours int  `json:"lead_hours"`
}

type Feedback struct {
	Rating  int    `json:"rating"` // 1-5
	Comment string `json:"comment,omitempty"`
}

// Completion holds the outcome recorded when a session is completed
type Completion struct {
	Summary     string    `json:"summary"`
	Insights    string    `json:"insights,omitempty"`
	Homework    string    `json:"homework,omitempty"`
	NextSteps   string    `json:"next_steps,omitempty"`
	Reflection  string    `json:"reflection,omitempty"`
	Feedback    *Feedback `json:"feedback,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

type Session struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Date        string          `json:"date"`       // YYYY-MM-DD format
	StartTime   string          `json:"start_time"` // HH:MM format
	EndTime     string          `json:"end_time"`   // HH:MM format
	DurationMin int             `json:"duration_min"`
	Title       string          `json:"title"`
	Type        SessionType     `json:"type"`
	Location    Location        `json:"location"`
	Notes       string          `json:"notes,omitempty"`
	Status      SessionStatus   `json:"status"`
	Method      *MethodSnapshot `json:"method,omitempty"`
	Reminder    Reminder        `json:"reminder"`
	Completion  *Completion     `json:"completion,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Occupying reports whether the session still holds its time slot.
func (s Session) Occupying() bool {
	return s.Status == SessionStatusScheduled || s.Status == SessionStatusRescheduled
}
