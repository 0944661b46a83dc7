package draft

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/errors"
	"github.com/julianstephens/coachdesk/internal/logger"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// Sink receives finalized sessions. *sessions.Store satisfies it.
type Sink interface {
	Add(session models.Session) (models.Session, error)
}

// Draft is a session being assembled before it is committed.
type Draft struct {
	ClientID    string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	DurationMin int
	Title       string
	Type        models.SessionType
	Location    models.Location
	Notes       string
	Reminder    models.Reminder
	Method      *models.CoachingMethod

	now   func() time.Time
	newID func() string
}

type Option func(*Draft)

func WithClock(now func() time.Time) Option {
	return func(d *Draft) { d.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(d *Draft) { d.newID = gen }
}

// WithSelection seeds the draft from a picked calendar cell.
func WithSelection(date, startTime string) Option {
	return func(d *Draft) {
		d.Date = date
		d.StartTime = startTime
	}
}

// New returns a draft populated with the default session settings.
func New(opts ...Option) *Draft {
	d := &Draft{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	d.reset()
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Draft) reset() {
	d.ClientID = ""
	d.Date = ""
	d.StartTime = ""
	d.DurationMin = constants.DefaultSessionDurationMin
	d.Title = ""
	d.Type = models.SessionType(constants.DefaultSessionType)
	d.Location = models.Location(constants.DefaultSessionLocation)
	d.Notes = ""
	d.Reminder = models.Reminder{
		Enabled:   constants.DefaultReminderEnabled,
		LeadHours: constants.DefaultReminderLeadHours,
	}
	d.Method = nil
}

func (d *Draft) SetClient(id string)                { d.ClientID = id }
func (d *Draft) SetDate(date string)                { d.Date = date }
func (d *Draft) SetStartTime(start string)          { d.StartTime = start }
func (d *Draft) SetDuration(minutes int)            { d.DurationMin = minutes }
func (d *Draft) SetTitle(title string)              { d.Title = title }
func (d *Draft) SetType(t models.SessionType)       { d.Type = t }
func (d *Draft) SetLocation(l models.Location)      { d.Location = l }
func (d *Draft) SetNotes(notes string)              { d.Notes = notes }
func (d *Draft) SetReminder(enabled bool, lead int) { d.Reminder = models.Reminder{Enabled: enabled, LeadHours: lead} }

// SelectMethod adopts the method's canonical duration. The method name becomes
// the title only when no title has been entered yet.
func (d *Draft) SelectMethod(m models.CoachingMethod) {
	d.Method = &m
	d.DurationMin = m.DurationMin
	if strings.TrimSpace(d.Title) == "" {
		d.Title = m.Name
	}
}

// ClearMethod drops the selected method. Title and duration are kept.
func (d *Draft) ClearMethod() {
	d.Method = nil
}

// EndTime derives the end time from start time and duration.
func (d *Draft) EndTime() (string, error) {
	return utils.AddMinutes(d.StartTime, d.DurationMin)
}

// Validate reports every missing or malformed field at once.
func (d *Draft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.ClientID) == "" {
		missing = append(missing, "client")
	}
	if strings.TrimSpace(d.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(d.StartTime) == "" {
		missing = append(missing, "startTime")
	}
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return &errors.ValidationError{Fields: missing}
	}

	var invalid []string
	if !utils.ValidateDateFormat(d.Date) {
		invalid = append(invalid, "date")
	}
	if !utils.ValidateTimeFormat(d.StartTime) {
		invalid = append(invalid, "startTime")
	}
	if d.DurationMin <= 0 {
		invalid = append(invalid, "duration")
	}
	if len(invalid) > 0 {
		return &errors.ValidationError{Fields: invalid, Reason: "invalid fields"}
	}

	if _, err := d.EndTime(); err != nil {
		return &errors.ValidationError{Fields: []string{"duration"}, Reason: "session must end before midnight"}
	}
	return nil
}

// Build validates the draft and returns the session it describes without committing it.
func (d *Draft) Build() (models.Session, error) {
	if err := d.Validate(); err != nil {
		return models.Session{}, err
	}
	end, err := d.EndTime()
	if err != nil {
		return models.Session{}, err
	}

	now := d.now()
	session := models.Session{
		ID:          d.newID(),
		ClientID:    d.ClientID,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     end,
		DurationMin: d.DurationMin,
		Title:       strings.TrimSpace(d.Title),
		Type:        d.Type,
		Location:    d.Location,
		Notes:       d.Notes,
		Status:      models.SessionStatusScheduled,
		Reminder:    d.Reminder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.Method != nil {
		session.Method = d.Method.Snapshot()
	}
	return session, nil
}

// Submit commits the draft to sink and resets it to defaults. On any error the
// draft and the sink are left unchanged.
func (d *Draft) Submit(sink Sink) (models.Session, error) {
	session, err := d.Build()
	if err != nil {
		logger.Debug("Draft rejected", "error", err)
		return models.Session{}, err
	}
	added, err := sink.Add(session)
	if err != nil {
		return models.Session{}, err
	}
	d.reset()
	return added, nil
}
