package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

type RecordAddCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Date  string `arg:"" optional:"" help:"Completion date (YYYY-MM-DD). Defaults to today."`
}

func (c *RecordAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	record, err := ctx.Store.AddRecord(habit.ID, date)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Logged %q on %s (record %d)\n", habit.Name, record.Date, record.ID)
	return nil
}

type RecordListCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *RecordListCmd) Run(ctx *Context) error {
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

	if len(records) == 0 {
		fmt.Printf("No records for %q yet.\n", habit.Name)
		return nil
	}

	fmt.Printf("Records for %q:\n", habit.Name)
	for _, r := range records {
		fmt.Printf("  [%d] %s\n", r.ID, r.Date)
	}

	return nil
}

type RecordDeleteCmd struct {
	ID int64 `arg:"" help:"Record id."`
}

func (c *RecordDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	record, err := ctx.Store.GetRecord(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteRecord(record.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted record %d (%s)\n", record.ID, record.Date)
	return nil
}
