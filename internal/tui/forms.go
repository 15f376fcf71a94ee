package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/validation"
)

func newHabitForm(fm *habitFormModel, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Prompt("> ").
				Value(&fm.Name).
				Validate(func(s string) error {
					_, err := validation.HabitName(s)
					return err
				}),
		),
	)
}

func newRecordForm(fm *recordFormModel, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("YYYY-MM-DD").
				Prompt("> ").
				Value(&fm.Date).
				Validate(func(s string) error {
					_, err := validation.Date(s)
					return err
				}),
		),
	)
}
