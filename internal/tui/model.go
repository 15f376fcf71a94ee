package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/streak"
	"github.com/julianstephens/habitual/internal/tui/components/menu"
)

type SessionState int

const (
	StateMainMenu SessionState = iota
	StateHabitList
	StateHabitMenu
	StateRecordList
	StateRecordMenu
	StateAddHabit
	StateRenameHabit
	StateAddRecord
	StateEditRecord
	StateConfirmDeleteHabit
	StateConfirmDeleteRecord
)

// Main menu option order.
const (
	mainOptionAddHabit = iota
	mainOptionViewHabits
	mainOptionExit
)

// Habit menu option order.
const (
	habitOptionAddRecord = iota
	habitOptionViewRecords
	habitOptionViewStreak
	habitOptionRename
	habitOptionDelete
	habitOptionBack
)

// Record menu option order.
const (
	recordOptionUpdate = iota
	recordOptionDelete
	recordOptionBack
)

type habitFormModel struct {
	Name string
}

type recordFormModel struct {
	Date string
}

type Model struct {
	store storage.Provider
	state SessionState
	keys  KeyMap
	help  help.Model
	menu  menu.Model

	habits  []models.Habit
	records []models.Record
	habit   models.Habit
	record  models.Record

	form       *huh.Form
	habitForm  *habitFormModel
	recordForm *recordFormModel

	status   string
	isError  bool
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store: store,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.enterMainMenu()
	return m
}

func (m *Model) enterMainMenu() {
	m.state = StateMainMenu
	m.menu = menu.New("Habit Tracker", []string{
		"Add a new habit",
		"View habits",
		"Exit",
	})
}

func (m *Model) enterHabitList() {
	habits, err := m.store.ListHabits()
	if err != nil {
		m.setError(err)
		m.enterMainMenu()
		return
	}
	if len(habits) == 0 {
		m.setStatus("No habits yet. Add one first.")
		m.enterMainMenu()
		return
	}

	names := make([]string, len(habits))
	for i, h := range habits {
		names[i] = h.Name
	}

	m.habits = habits
	m.state = StateHabitList
	m.menu = menu.New("My Habits", names)
}

func (m *Model) enterHabitMenu(habit models.Habit) {
	m.habit = habit
	m.state = StateHabitMenu
	m.menu = menu.New(fmt.Sprintf("Habit: %s", habit.Name), []string{
		"Add a new record",
		"View records",
		"View streak",
		"Rename habit",
		"Delete habit",
		"Back",
	})
	m.menu.Subtitle = fmt.Sprintf("Longest streak: %d days", m.longestStreak(habit.ID))
}

func (m *Model) enterRecordList() {
	records, err := m.store.ListRecords(m.habit.ID)
	if err != nil {
		m.setError(err)
		m.enterHabitMenu(m.habit)
		return
	}
	if len(records) == 0 {
		m.setStatus("No records yet.")
		m.enterHabitMenu(m.habit)
		return
	}

	dates := make([]string, len(records))
	for i, r := range records {
		dates[i] = r.Date
	}

	m.records = records
	m.state = StateRecordList
	m.menu = menu.New(fmt.Sprintf("Records: %s", m.habit.Name), dates)
}

func (m *Model) enterRecordMenu(record models.Record) {
	m.record = record
	m.state = StateRecordMenu
	m.menu = menu.New(fmt.Sprintf("Record: %s on %s", m.habit.Name, record.Date), []string{
		"Update record",
		"Delete record",
		"Back",
	})
}

// longestStreak computes the habit's longest run from its stored records.
// A store error here only affects the header, so it degrades to 0.
func (m *Model) longestStreak(habitID int64) int {
	records, err := m.store.ListRecords(habitID)
	if err != nil {
		return 0
	}
	return streak.Longest(recordDates(records))
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

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.isError = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.isError = true
}
