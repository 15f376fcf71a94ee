package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup snapshots the database on a best-effort basis.
// Failures are reported but never block startup.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// resolveHabit accepts either a numeric habit id or a habit name.
func resolveHabit(ctx *Context, ref string) (models.Habit, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		habit, err := ctx.Store.GetHabit(id)
		if err == nil {
			return habit, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return models.Habit{}, err
		}
		// A purely numeric habit name is unusual but allowed; fall through.
	}
	return ctx.Store.GetHabitByName(ref)
}

func recordDates(records []models.Record) []time.Time {
	dates := make([]time.Time, 0, len(records))
	for _, r := range records {
		if d, err := time.Parse(constants.DateFormat, r.Date); err == nil {
			dates = append(dates, d)
		}
	}
	return dates
}
