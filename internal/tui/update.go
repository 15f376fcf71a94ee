package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/streak"
	"github.com/julianstephens/habitual/internal/tui/components/menu"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateAddHabit, StateRenameHabit, StateAddRecord, StateEditRecord:
		return m.updateForm(msg)
	case StateConfirmDeleteHabit, StateConfirmDeleteRecord:
		return m.updateConfirm(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case menu.ChooseMsg:
		return m.choose(msg.Index)
	case menu.CancelMsg:
		return m.cancel()
	case tea.KeyMsg:
		// A fresh keypress clears the previous status line.
		m.status = ""
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) choose(index int) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateMainMenu:
		switch index {
		case mainOptionAddHabit:
			cmd := m.enterAddHabit()
			return m, cmd
		case mainOptionViewHabits:
			m.enterHabitList()
		case mainOptionExit:
			m.quitting = true
			return m, tea.Quit
		}

	case StateHabitList:
		if index >= 0 && index < len(m.habits) {
			m.enterHabitMenu(m.habits[index])
		}

	case StateHabitMenu:
		switch index {
		case habitOptionAddRecord:
			cmd := m.enterAddRecord()
			return m, cmd
		case habitOptionViewRecords:
			m.enterRecordList()
		case habitOptionViewStreak:
			m.showStreak()
		case habitOptionRename:
			cmd := m.enterRenameHabit()
			return m, cmd
		case habitOptionDelete:
			m.state = StateConfirmDeleteHabit
		case habitOptionBack:
			m.enterHabitList()
		}

	case StateRecordList:
		if index >= 0 && index < len(m.records) {
			m.enterRecordMenu(m.records[index])
		}

	case StateRecordMenu:
		switch index {
		case recordOptionUpdate:
			cmd := m.enterEditRecord()
			return m, cmd
		case recordOptionDelete:
			m.state = StateConfirmDeleteRecord
		case recordOptionBack:
			m.enterRecordList()
		}
	}

	return m, nil
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateMainMenu:
		m.quitting = true
		return m, tea.Quit
	case StateHabitList:
		m.enterMainMenu()
	case StateHabitMenu:
		m.enterHabitList()
	case StateRecordList:
		m.enterHabitMenu(m.habit)
	case StateRecordMenu:
		m.enterRecordList()
	}
	return m, nil
}

func (m *Model) showStreak() {
	records, err := m.store.ListRecords(m.habit.ID)
	if err != nil {
		m.setError(err)
		return
	}

	dates := recordDates(records)
	m.setStatus(fmt.Sprintf(
		"Longest streak: %d days. Current streak: %d days.",
		streak.Longest(dates),
		streak.Current(dates, time.Now()),
	))
}

func (m *Model) enterAddHabit() tea.Cmd {
	m.habitForm = &habitFormModel{}
	m.form = newHabitForm(m.habitForm, "New habit")
	m.state = StateAddHabit
	return m.form.Init()
}

func (m *Model) enterRenameHabit() tea.Cmd {
	m.habitForm = &habitFormModel{Name: m.habit.Name}
	m.form = newHabitForm(m.habitForm, fmt.Sprintf("Rename %q", m.habit.Name))
	m.state = StateRenameHabit
	return m.form.Init()
}

func (m *Model) enterAddRecord() tea.Cmd {
	m.recordForm = &recordFormModel{Date: time.Now().Format(constants.DateFormat)}
	m.form = newRecordForm(m.recordForm, fmt.Sprintf("Record for %q", m.habit.Name))
	m.state = StateAddRecord
	return m.form.Init()
}

func (m *Model) enterEditRecord() tea.Cmd {
	m.recordForm = &recordFormModel{Date: m.record.Date}
	m.form = newRecordForm(m.recordForm, fmt.Sprintf("Move record %s", m.record.Date))
	m.state = StateEditRecord
	return m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.exitForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		m.exitForm()
		return m, nil
	}

	return m, cmd
}

// exitForm returns to the menu the form was opened from.
func (m *Model) exitForm() {
	switch m.state {
	case StateAddHabit:
		m.enterMainMenu()
	case StateRenameHabit, StateAddRecord:
		m.enterHabitMenu(m.habit)
	case StateEditRecord:
		m.enterRecordMenu(m.record)
	}
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAddHabit:
		habit, err := m.store.CreateHabit(m.habitForm.Name)
		switch {
		case err == nil:
			m.setStatus("Habit added.")
			m.enterHabitMenu(habit)
		case errors.Is(err, storage.ErrDuplicateName):
			// Same behavior as logging an existing habit by name: open it.
			m.setStatus("Habit already exists.")
			if existing, lookupErr := m.store.GetHabitByName(m.habitForm.Name); lookupErr == nil {
				m.enterHabitMenu(existing)
			} else {
				m.enterMainMenu()
			}
		default:
			m.setError(err)
			m.enterMainMenu()
		}

	case StateRenameHabit:
		habit, err := m.store.RenameHabit(m.habit.ID, m.habitForm.Name)
		if err != nil {
			m.setError(err)
			m.enterHabitMenu(m.habit)
		} else {
			m.setStatus("Habit renamed.")
			m.enterHabitMenu(habit)
		}

	case StateAddRecord:
		_, err := m.store.AddRecord(m.habit.ID, m.recordForm.Date)
		switch {
		case err == nil:
			m.setStatus("Record added.")
		case errors.Is(err, storage.ErrDuplicateDate):
			m.setStatus("Record already exists for that date.")
		default:
			m.setError(err)
		}
		m.enterHabitMenu(m.habit)

	case StateEditRecord:
		record, err := m.store.UpdateRecord(m.record.ID, m.recordForm.Date)
		if err != nil {
			m.setError(err)
			m.enterRecordMenu(m.record)
		} else {
			m.setStatus("Record updated.")
			m.enterRecordMenu(record)
		}
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.state == StateConfirmDeleteHabit {
			err := m.store.DeleteHabit(m.habit.ID)
			m.enterHabitList()
			if err != nil {
				m.setError(err)
			} else {
				m.setStatus("Habit deleted.")
			}
		} else {
			err := m.store.DeleteRecord(m.record.ID)
			m.enterRecordList()
			if err != nil {
				m.setError(err)
			} else {
				m.setStatus("Record deleted.")
			}
		}

	case "n", "N", "esc":
		if m.state == StateConfirmDeleteHabit {
			m.enterHabitMenu(m.habit)
		} else {
			m.enterRecordMenu(m.record)
		}
	}

	return m, nil
}
