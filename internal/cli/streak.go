package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/streak"
)

type StreakCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	records, err := ctx.Store.ListRecords(habit.ID)
	if err != nil {
		return err
	}

	dates := recordDates(records)
	fmt.Printf("%s\n", habit.Name)
	fmt.Printf("  Longest streak: %d days\n", streak.Longest(dates))
	fmt.Printf("  Current streak: %d days\n", streak.Current(dates, time.Now()))

	return nil
}
