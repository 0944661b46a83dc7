package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/coachdesk/internal/draft"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/sessions"
	"github.com/julianstephens/coachdesk/internal/utils"
)

type SessionCmd struct {
	Add        SessionAddCmd        `cmd:"" help:"Schedule a new session."`
	List       SessionListCmd       `cmd:"" help:"List sessions."`
	Show       SessionShowCmd       `cmd:"" help:"Show a session in detail."`
	Complete   SessionCompleteCmd   `cmd:"" help:"Record the outcome of a session."`
	Cancel     SessionCancelCmd     `cmd:"" help:"Cancel a session."`
	Reschedule SessionRescheduleCmd `cmd:"" help:"Move a session to another date or time."`
	NoShow     SessionNoShowCmd     `cmd:"" name:"no-show" help:"Mark a session as not attended."`
	Delete     SessionDeleteCmd     `cmd:"" help:"Delete a session."`
}

type SessionAddCmd struct {
	Client      string `short:"c" help:"Client id."`
	Date        string `short:"d" help:"Session date (YYYY-MM-DD, 'today' or 'tomorrow')."`
	Start       string `short:"s" help:"Start time (HH:MM)."`
	Duration    int    `help:"Duration in minutes. Defaults to the method's duration, else 60."`
	Title       string `short:"t" help:"Session title. Defaults to the method name."`
	Method      string `short:"m" help:"Coaching method id."`
	Type        string `help:"Session type." enum:"coaching,consultation,follow-up,workshop,assessment" default:"coaching"`
	Location    string `help:"Session location." enum:"office,online,phone,on-site" default:"office"`
	Notes       string `short:"n" help:"Free-text notes."`
	NoReminder  bool   `help:"Disable the reminder."`
	Interactive bool   `short:"i" help:"Fill in the session with an interactive form."`
}

func (c *SessionAddCmd) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	if c.Start != "" && !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM): %s", c.Start)
	}
	return nil
}

func (c *SessionAddCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	d := draft.New(draft.WithClock(ctx.Now))
	if err := c.apply(ctx, d); err != nil {
		return err
	}
	if c.Interactive {
		if err := runSessionForm(ctx, d); err != nil {
			return err
		}
	}

	if _, err := ctx.Clients.Get(d.ClientID); err != nil && d.ClientID != "" {
		ctx.printf("Warning: client %s is not in the catalog\n", d.ClientID)
	}
	warnIfTaken(ctx, d)

	session, err := d.Submit(ctx.Sessions)
	if err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}

	ctx.printf("✓ Scheduled %s\n", ctx.formatSession(session))
	return nil
}

// apply copies flags into the draft. The title goes in before the method so an
// explicit title wins; an explicit duration overrides the method's.
func (c *SessionAddCmd) apply(ctx *Context, d *draft.Draft) error {
	d.SetClient(c.Client)
	if c.Date != "" {
		day, err := ctx.parseDate(c.Date)
		if err != nil {
			return err
		}
		d.SetDate(utils.DateKey(day))
	}
	d.SetStartTime(c.Start)
	d.SetTitle(c.Title)
	if c.Method != "" {
		m, err := ctx.Methods.Get(c.Method)
		if err != nil {
			return err
		}
		d.SelectMethod(m)
	}
	if c.Duration > 0 {
		d.SetDuration(c.Duration)
	}
	d.SetType(models.SessionType(c.Type))
	d.SetLocation(models.Location(c.Location))
	d.SetNotes(c.Notes)
	if c.NoReminder {
		d.SetReminder(false, 0)
	}
	return nil
}

// warnIfTaken prints a notice when the start time is not a free slot. Booking is still allowed.
func warnIfTaken(ctx *Context, d *draft.Draft) {
	day, err := utils.ParseDate(d.Date, ctx.Now().Location())
	if err != nil || d.StartTime == "" {
		return
	}
	slots, err := ctx.Availability().Slots(day)
	if err != nil {
		return
	}
	for _, s := range slots {
		if s == d.StartTime {
			return
		}
	}
	ctx.printf("Warning: %s on %s is not a free slot\n", d.StartTime, d.Date)
}

type SessionListCmd struct {
	Client string `short:"c" help:"Only sessions of this client, newest first."`
	Date   string `short:"d" help:"Only sessions on this day (YYYY-MM-DD, 'today' or 'tomorrow')."`
	From   string `help:"Start of a date range (inclusive)."`
	To     string `help:"End of a date range (inclusive)."`
	Status string `short:"s" help:"Only sessions with this status."`
}

func (c *SessionListCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	var list []models.Session
	switch {
	case c.Client != "":
		list = ctx.Sessions.ForClient(c.Client)
	case c.Date != "":
		day, err := ctx.parseDate(c.Date)
		if err != nil {
			return err
		}
		list = ctx.Sessions.ForDate(day)
	case c.From != "" || c.To != "":
		from, err := ctx.parseDate(c.From)
		if err != nil {
			return err
		}
		to := from.AddDate(0, 1, 0)
		if c.To != "" {
			if to, err = ctx.parseDate(c.To); err != nil {
				return err
			}
		}
		list = ctx.Sessions.ForDateRange(from, to)
	default:
		list = ctx.Sessions.Chronological()
	}

	if c.Status != "" {
		filtered := list[:0]
		for _, s := range list {
			if string(s.Status) == c.Status {
				filtered = append(filtered, s)
			}
		}
		list = filtered
	}

	if len(list) == 0 {
		ctx.println("No sessions found")
		return nil
	}
	ctx.println("Sessions:")
	for _, s := range list {
		ctx.printf("  %s\n", ctx.formatSession(s))
	}
	return nil
}

type SessionShowCmd struct {
	ID string `arg:"" help:"Session id."`
}

func (c *SessionShowCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	s, err := ctx.Sessions.Get(c.ID)
	if err != nil {
		return err
	}

	client, warn := ctx.Clients.Resolve(s)
	ctx.printf("%s\n", s.Title)
	ctx.printf("  ID:        %s\n", s.ID)
	ctx.printf("  Client:    %s (%s)\n", client.FullName(), s.ClientID)
	if warn != nil {
		ctx.printf("  Warning:   %v\n", warn)
	}
	ctx.printf("  When:      %s %s-%s (%d min)\n", s.Date, s.StartTime, s.EndTime, s.DurationMin)
	ctx.printf("  Type:      %s, %s\n", s.Type, s.Location)
	ctx.printf("  Status:    %s\n", s.Status)
	if s.Method != nil {
		ctx.printf("  Method:    %s (%s)\n", s.Method.Name, s.Method.Category)
	}
	if s.Reminder.Enabled {
		ctx.printf("  Reminder:  %dh before\n", s.Reminder.LeadHours)
	}
	if s.Notes != "" {
		ctx.printf("  Notes:     %s\n", strings.ReplaceAll(s.Notes, "\n", "\n             "))
	}
	if comp := s.Completion; comp != nil {
		ctx.printf("  Summary:   %s\n", comp.Summary)
		for _, f := range [][2]string{
			{"Insights", comp.Insights},
			{"Homework", comp.Homework},
			{"Next", comp.NextSteps},
			{"Reflection", comp.Reflection},
		} {
			if f[1] != "" {
				ctx.printf("  %-10s %s\n", f[0]+":", f[1])
			}
		}
		if comp.Feedback != nil {
			ctx.printf("  Rating:    %d/5 %s\n", comp.Feedback.Rating, comp.Feedback.Comment)
		}
	}
	return nil
}

type SessionCompleteCmd struct {
	ID         string `arg:"" help:"Session id."`
	Summary    string `required:"" help:"What was worked on."`
	Insights   string `help:"Key insights."`
	Homework   string `help:"Agreed homework."`
	NextSteps  string `help:"Next steps."`
	Reflection string `help:"Coach's reflection."`
	Rating     int    `help:"Client rating 1-5 (0 for none)."`
	Comment    string `help:"Client feedback comment."`
}

func (c *SessionCompleteCmd) Validate() error {
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

func (c *SessionCompleteCmd) Run(ctx *Context) error {
	in := sessions.CompletionInput{
		Summary:    c.Summary,
		Insights:   c.Insights,
		Homework:   c.Homework,
		NextSteps:  c.NextSteps,
		Reflection: c.Reflection,
	}
	if c.Rating > 0 {
		in.Feedback = &models.Feedback{Rating: c.Rating, Comment: c.Comment}
	}
	return mutate(ctx, "Completed", func() (models.Session, error) {
		return ctx.Sessions.Complete(c.ID, in)
	})
}

type SessionCancelCmd struct {
	ID     string `arg:"" help:"Session id."`
	Reason string `short:"r" help:"Reason, appended to the notes."`
}

func (c *SessionCancelCmd) Run(ctx *Context) error {
	return mutate(ctx, "Cancelled", func() (models.Session, error) {
		return ctx.Sessions.Cancel(c.ID, c.Reason)
	})
}

type SessionRescheduleCmd struct {
	ID   string `arg:"" help:"Session id."`
	Date string `arg:"" help:"New date (YYYY-MM-DD, 'today' or 'tomorrow')."`
	Time string `short:"t" help:"New start time (HH:MM). Keeps the current time when omitted."`
}

func (c *SessionRescheduleCmd) Run(ctx *Context) error {
	return mutate(ctx, "Rescheduled", func() (models.Session, error) {
		day, err := ctx.parseDate(c.Date)
		if err != nil {
			return models.Session{}, err
		}
		return ctx.Sessions.Reschedule(c.ID, utils.DateKey(day), c.Time)
	})
}

type SessionNoShowCmd struct {
	ID string `arg:"" help:"Session id."`
}

func (c *SessionNoShowCmd) Run(ctx *Context) error {
	return mutate(ctx, "Marked no-show", func() (models.Session, error) {
		return ctx.Sessions.MarkNoShow(c.ID)
	})
}

type SessionDeleteCmd struct {
	ID string `arg:"" help:"Session id."`
}

func (c *SessionDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.Sessions.Delete(c.ID); err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}
	ctx.printf("✓ Deleted session %s\n", c.ID)
	return nil
}

// mutate loads the store, applies op and saves on success.
func mutate(ctx *Context, verb string, op func() (models.Session, error)) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	s, err := op()
	if err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}
	ctx.printf("✓ %s %s\n", verb, ctx.formatSession(s))
	return nil
}
