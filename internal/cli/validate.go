package cli

import (
	"fmt"

	"github.com/julianstephens/coachdesk/internal/validation"
)

type ValidateCmd struct {
	Strict bool `help:"Exit with an error when conflicts are found."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	ctx.println("Validating sessions...")
	result := validation.New(ctx.Clients, ctx.Settings).ValidateSessions(ctx.Sessions.All())

	ctx.println()
	ctx.println(result.FormatReport())

	if cmd.Strict && result.HasConflicts() {
		return fmt.Errorf("%d conflicts found", len(result.Conflicts))
	}
	return nil
}
