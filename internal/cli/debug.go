package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath      DebugDBPathCmd      `cmd:"" name:"db-path" help:"Show storage path."`
	DumpSession DebugDumpSessionCmd `cmd:"" help:"Dump session data as JSON."`
	DumpDay     DebugDumpDayCmd     `cmd:"" help:"Dump all sessions of a day as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	return ctx.printJSON(map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpSessionCmd struct {
	ID string `arg:"" help:"ID of the session to dump."`
}

func (cmd *DebugDumpSessionCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	session, err := ctx.Sessions.Get(cmd.ID)
	if err != nil {
		return err
	}
	return ctx.printJSON(session)
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Day to dump (YYYY-MM-DD, 'today' or 'tomorrow')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	day, err := ctx.parseDate(cmd.Date)
	if err != nil {
		return err
	}
	return ctx.printJSON(ctx.Sessions.ForDate(day))
}

func (c *Context) printJSON(v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	c.println(string(jsonBytes))
	return nil
}
