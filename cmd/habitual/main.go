package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Db      string `help:"Database file path." type:"path" default:"~/.config/habitual/habits.db"`

	Init  cli.InitCmd `cmd:"" help:"Initialize habitual storage."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive tracker." default:"1"`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits with their streaks."`
		Rename cli.HabitRenameCmd `cmd:"" help:"Rename a habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit and its records."`
	} `cmd:"" help:"Manage habits."`
	Record struct {
		Add    cli.RecordAddCmd    `cmd:"" help:"Log a completion for a habit."`
		List   cli.RecordListCmd   `cmd:"" help:"List completions for a habit."`
		Delete cli.RecordDeleteCmd `cmd:"" help:"Delete a completion record."`
	} `cmd:"" help:"Manage completion records."`
	Streak cli.StreakCmd `cmd:"" help:"Show streaks for a habit."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitual"),
		kong.Description("Terminal habit tracker with consecutive-day streaks"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		Store: storage.NewSQLiteStore(CLI.Db),
	}

	err := ctx.Run(appCtx)
	if cerr := appCtx.Store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
