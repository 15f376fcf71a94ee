package storage

import "github.com/julianstephens/habitual/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	CreateHabit(name string) (models.Habit, error)
	GetHabit(id int64) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	ListHabits() ([]models.Habit, error)
	RenameHabit(id int64, newName string) (models.Habit, error)
	DeleteHabit(id int64) error

	// Records
	AddRecord(habitID int64, date string) (models.Record, error)
	GetRecord(id int64) (models.Record, error)
	FindRecord(habitID int64, date string) (models.Record, error)
	ListRecords(habitID int64) ([]models.Record, error)
	UpdateRecord(id int64, date string) (models.Record, error)
	DeleteRecord(id int64) error

	// Utils
	GetConfigPath() string
}
