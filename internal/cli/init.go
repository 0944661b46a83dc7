package cli

import (
	"fmt"

	"github.com/julianstephens/coachdesk/internal/catalog"
)

type InitCmd struct {
	Seed bool `help:"Populate the new store with demo sessions."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized coachdesk storage at: %s\n", ctx.Store.GetConfigPath())

	if !c.Seed {
		return nil
	}
	if err := ctx.Load(); err != nil {
		return err
	}
	for _, s := range catalog.SeedSessions(ctx.today()) {
		if _, err := ctx.Sessions.Add(s); err != nil {
			return fmt.Errorf("failed to seed session %s: %w", s.ID, err)
		}
	}
	if err := ctx.Save(); err != nil {
		return err
	}
	ctx.printf("Seeded %d demo sessions.\n", ctx.Sessions.Len())
	return nil
}
