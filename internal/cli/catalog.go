package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/coachdesk/internal/models"
)

type MethodsCmd struct {
	Category string `short:"c" help:"Only list methods of this category."`
}

func (c *MethodsCmd) Run(ctx *Context) error {
	methods := ctx.Methods.All()
	if c.Category != "" {
		methods = ctx.Methods.ByCategory(c.Category)
	}
	if len(methods) == 0 {
		ctx.println("No methods found")
		return nil
	}

	ctx.println("Coaching methods:")
	for _, m := range methods {
		guide := ""
		if phases, ok := ctx.Methods.Guide(m.ID); ok {
			guide = fmt.Sprintf(", guide with %d phases", len(phases))
		}
		ctx.printf("  %-28s %s (%s, %d min%s)\n", m.ID, m.Name, m.Category, m.DurationMin, guide)
	}
	return nil
}

type GuideCmd struct {
	Method string `arg:"" help:"Method id."`
}

func (c *GuideCmd) Run(ctx *Context) error {
	m, err := ctx.Methods.Get(c.Method)
	if err != nil {
		return err
	}
	phases, ok := ctx.Methods.Guide(m.ID)
	if !ok {
		ctx.printf("%s has no session guide.\n", m.Name)
		return nil
	}

	ctx.printf("%s (%d min)\n", m.Name, m.DurationMin)
	total := 0
	for i, p := range phases {
		total += p.MaxMinutes
		ctx.printf("\n%d. %s  %d-%d min\n", i+1, p.Name, p.MinMinutes, p.MaxMinutes)
		for _, q := range p.Questions {
			ctx.printf("   ? %s\n", q)
		}
		if len(p.Tools) > 0 {
			ctx.printf("   Tools: %s\n", strings.Join(p.Tools, ", "))
		}
	}
	if total > m.DurationMin {
		ctx.printf("\nNote: phase maxima add up to %d min, more than the planned %d min.\n", total, m.DurationMin)
	}
	return nil
}

type ClientsCmd struct {
	Status string `short:"s" help:"Only list clients with this status (active|inactive|pending|paused)."`
}

func (c *ClientsCmd) Run(ctx *Context) error {
	var clients []models.Client
	if c.Status != "" {
		clients = ctx.Clients.ListByStatus(models.ClientStatus(c.Status))
	} else {
		clients = ctx.Clients.List()
	}
	if len(clients) == 0 {
		ctx.println("No clients found")
		return nil
	}

	ctx.println("Clients:")
	for _, cl := range clients {
		ctx.printf("  [%-8s] %s  %s <%s>\n", cl.Status, cl.ID, cl.FullName(), cl.Email)
		if cl.CoachingGoals != "" {
			ctx.printf("      Goals: %s\n", cl.CoachingGoals)
		}
	}
	return nil
}
