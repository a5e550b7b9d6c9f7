package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/vitalflow/internal/cli"
	"github.com/julianstephens/vitalflow/internal/insight"
	"github.com/julianstephens/vitalflow/internal/journal"
	"github.com/julianstephens/vitalflow/internal/logger"
	"github.com/julianstephens/vitalflow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/vitalflow/vitalflow.db"`
	Debug   bool   `help:"Enable debug logging."`
	Model   string `help:"Gemini model for insights." default:"${default_model}"`

	Init     cli.InitCmd     `cmd:"" help:"Set up vitalflow and your profile."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Checkin  cli.CheckinCmd  `cmd:"" help:"Record today's mood check-in."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's summary."`
	History  cli.HistoryCmd  `cmd:"" help:"Show past check-ins and mood trend."`
	Insights cli.InsightsCmd `cmd:"" help:"Analyze mood patterns with AI."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a check-in by date."`
	Reset    cli.ResetCmd    `cmd:"" help:"Erase all check-ins and profile data."`
	Cfg      cli.ConfigCmd   `cmd:"" name:"config" help:"Manage the Gemini API key."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Check storage and configuration health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("vitalflow"),
		kong.Description("Daily mood journal with AI wellness insights"),
		kong.UsageOnError(),
		kong.Vars{
			"version":       "v0.1.0",
			"default_model": insight.DefaultModel,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	// Storage provider follows the file extension
	var store storage.Store
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	clock := journal.SystemClock()
	appCtx := &cli.Context{
		Store: store,
		Repo:  journal.NewRepository(store, clock),
		Clock: clock,
		Model: CLI.Model,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
