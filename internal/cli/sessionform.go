package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/draft"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// sessionForm holds the values bound to the huh fields. An empty Duration keeps
// the draft's duration.
type sessionForm struct {
	ClientID  string
	Date      string
	StartTime string
	MethodID  string
	Title     string
	Duration  string
	Type      models.SessionType
	Location  models.Location
	Notes     string
	Reminder  bool
}

func newSessionForm(d *draft.Draft) *sessionForm {
	fm := &sessionForm{
		ClientID:  d.ClientID,
		Date:      d.Date,
		StartTime: d.StartTime,
		Title:     d.Title,
		Type:      d.Type,
		Location:  d.Location,
		Notes:     d.Notes,
		Reminder:  d.Reminder.Enabled,
	}
	if d.Method != nil {
		fm.MethodID = d.Method.ID
	}
	return fm
}

func buildSessionForm(ctx *Context, fm *sessionForm) *huh.Form {
	clientOpts := []huh.Option[string]{}
	for _, cl := range ctx.Clients.List() {
		clientOpts = append(clientOpts, huh.NewOption(fmt.Sprintf("%s (%s)", cl.FullName(), cl.Status), cl.ID))
	}

	methodOpts := []huh.Option[string]{huh.NewOption("No method", "")}
	for _, m := range ctx.Methods.All() {
		methodOpts = append(methodOpts, huh.NewOption(fmt.Sprintf("%s (%d min)", m.Name, m.DurationMin), m.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Client").
				Options(clientOpts...).
				Value(&fm.ClientID),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start").
				Description("Free slots on the chosen day").
				OptionsFunc(func() []huh.Option[string] {
					return slotOptions(ctx, fm.Date)
				}, &fm.Date).
				Value(&fm.StartTime),
			huh.NewSelect[string]().
				Title("Method").
				Options(methodOpts...).
				Value(&fm.MethodID),
			huh.NewInput().
				Title("Title").
				Description("Leave empty to use the method name").
				Value(&fm.Title),
			huh.NewInput().
				Title("Duration (min)").
				Description("Leave empty to use the method's duration").
				Value(&fm.Duration).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("duration must be a positive number of minutes")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[models.SessionType]().
				Title("Type").
				Options(
					huh.NewOption("Coaching", models.SessionTypeCoaching),
					huh.NewOption("Consultation", models.SessionTypeConsultation),
					huh.NewOption("Follow-up", models.SessionTypeFollowUp),
					huh.NewOption("Workshop", models.SessionTypeWorkshop),
					huh.NewOption("Assessment", models.SessionTypeAssessment),
				).
				Value(&fm.Type),
			huh.NewSelect[models.Location]().
				Title("Location").
				Options(
					huh.NewOption("Office", models.LocationOffice),
					huh.NewOption("Online", models.LocationOnline),
					huh.NewOption("Phone", models.LocationPhone),
					huh.NewOption("On-site", models.LocationOnSite),
				).
				Value(&fm.Location),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
			huh.NewConfirm().
				Title("Reminder").
				Value(&fm.Reminder),
		),
	).WithTheme(huh.ThemeDracula())
}

func slotOptions(ctx *Context, date string) []huh.Option[string] {
	day, err := utils.ParseDate(date, ctx.Now().Location())
	if err != nil {
		return nil
	}
	slots, err := ctx.Availability().Slots(day)
	if err != nil {
		return nil
	}
	opts := make([]huh.Option[string], 0, len(slots))
	for _, s := range slots {
		opts = append(opts, huh.NewOption(s, s))
	}
	return opts
}

// applyTo writes the form values into d. A typed title is set before the method
// so it takes precedence; a typed duration overrides the method's.
func (fm *sessionForm) applyTo(ctx *Context, d *draft.Draft) error {
	d.SetClient(fm.ClientID)
	d.SetDate(fm.Date)
	d.SetStartTime(fm.StartTime)
	d.SetTitle(strings.TrimSpace(fm.Title))

	d.ClearMethod()
	if fm.MethodID != "" {
		m, err := ctx.Methods.Get(fm.MethodID)
		if err != nil {
			return err
		}
		d.SelectMethod(m)
	}
	if s := strings.TrimSpace(fm.Duration); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		d.SetDuration(n)
	}

	d.SetType(fm.Type)
	d.SetLocation(fm.Location)
	d.SetNotes(fm.Notes)
	lead := d.Reminder.LeadHours
	if lead == 0 {
		lead = constants.DefaultReminderLeadHours
	}
	d.SetReminder(fm.Reminder, lead)
	return nil
}

func runSessionForm(ctx *Context, d *draft.Draft) error {
	fm := newSessionForm(d)
	if fm.Date == "" {
		fm.Date = utils.DateKey(ctx.today())
	}
	if err := buildSessionForm(ctx, fm).Run(); err != nil {
		return err
	}
	return fm.applyTo(ctx, d)
}
