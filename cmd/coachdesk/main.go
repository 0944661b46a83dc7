package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/coachdesk/internal/cli"
	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/errors"
	"github.com/julianstephens/coachdesk/internal/logger"
	"github.com/julianstephens/coachdesk/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path (.db for SQLite, .json for a JSON document)." type:"path" default:"~/.config/coachdesk/coachdesk.db" env:"COACHDESK_DATA"`
	Debug   bool   `help:"Enable debug logging." env:"COACHDESK_DEBUG"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize coachdesk storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the calendar browser." default:"1"`
	Slots     cli.SlotsCmd     `cmd:"" help:"List free start times for a day."`
	Calendar  cli.CalendarCmd  `cmd:"" help:"Print a month calendar."`
	Recommend cli.RecommendCmd `cmd:"" help:"Recommend coaching methods for a client's goals."`
	Methods   cli.MethodsCmd   `cmd:"" help:"List coaching methods."`
	Guide     cli.GuideCmd     `cmd:"" help:"Show the guide of a coaching method."`
	Clients   cli.ClientsCmd   `cmd:"" help:"List clients."`
	Session   cli.SessionCmd   `cmd:"" help:"Manage sessions."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show session statistics."`
	Validate  cli.ValidateCmd  `cmd:"" help:"Check sessions for conflicts."`
	Backup    cli.BackupCmd    `cmd:"" help:"Manage backups."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks."`
	DebugTools cli.DebugCmd    `cmd:"" name:"debug" help:"Debugging helpers." hidden:""`
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Session planner for coaching practices"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store := storage.Open(CLI.Config)
	err := ctx.Run(cli.NewContext(store))
	if cerr := store.Close(); cerr != nil {
		logger.Warn("Failed to close storage", "error", cerr)
	}
	errors.Fatal(err)
}
