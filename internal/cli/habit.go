package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/streak"
)

type HabitAddCmd struct {
	Name string `arg:"" help:"Name of the habit."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.CreateHabit(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Added habit %q (id %d)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitual habit add NAME'.")
		return nil
	}

	now := time.Now()
	for _, h := range habits {
		records, err := ctx.Store.ListRecords(h.ID)
		if err != nil {
			return err
		}
		dates := recordDates(records)
		fmt.Printf("  [%d] %-24s %3d records  longest %d  current %d\n",
			h.ID, h.Name, len(records), streak.Longest(dates), streak.Current(dates, now))
	}

	return nil
}

type HabitRenameCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Name  string `arg:"" help:"New name for the habit."`
}

func (c *HabitRenameCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	renamed, err := ctx.Store.RenameHabit(habit.ID, c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Renamed %q to %q\n", habit.Name, renamed.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted habit %q and its records\n", habit.Name)
	return nil
}
