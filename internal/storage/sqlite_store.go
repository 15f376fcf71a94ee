package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/validation"
	_ "modernc.org/sqlite"
)

// schema is the on-disk compatibility contract: two tables, a unique habit
// name, and record deletion cascading from habit deletion.
const schema = `
CREATE TABLE IF NOT EXISTS habits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    habit TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    habit_id INTEGER NOT NULL,
    date DATE NOT NULL,
    FOREIGN KEY (habit_id)
        REFERENCES habits (id)
        ON DELETE CASCADE,
    UNIQUE (habit_id, date)
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// Init creates the config directory if needed, opens the database, and
// ensures the schema exists. Calling it on an existing database is a no-op
// beyond opening the connection.
func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Single sequential user; one connection keeps the foreign_keys pragma
	// in effect for every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

// Load opens the database, creating it on first use.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) CreateHabit(name string) (models.Habit, error) {
	name, err := validation.HabitName(name)
	if err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	res, err := s.db.Exec("INSERT INTO habits (habit) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Habit{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return models.Habit{}, fmt.Errorf("failed to create habit: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to read habit id: %w", err)
	}

	return models.Habit{ID: id, Name: name}, nil
}

func (s *SQLiteStore) GetHabit(id int64) (models.Habit, error) {
	var h models.Habit
	err := s.db.QueryRow("SELECT id, habit FROM habits WHERE id = ?", id).Scan(&h.ID, &h.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("%w: habit %d", ErrNotFound, id)
		}
		return models.Habit{}, fmt.Errorf("failed to get habit: %w", err)
	}
	return h, nil
}

func (s *SQLiteStore) GetHabitByName(name string) (models.Habit, error) {
	var h models.Habit
	err := s.db.QueryRow("SELECT id, habit FROM habits WHERE habit = ?", strings.TrimSpace(name)).Scan(&h.ID, &h.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("%w: habit %q", ErrNotFound, name)
		}
		return models.Habit{}, fmt.Errorf("failed to get habit: %w", err)
	}
	return h, nil
}

// ListHabits returns all habits ordered by name.
func (s *SQLiteStore) ListHabits() ([]models.Habit, error) {
	rows, err := s.db.Query("SELECT id, habit FROM habits ORDER BY habit")
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) RenameHabit(id int64, newName string) (models.Habit, error) {
	name, err := validation.HabitName(newName)
	if err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	res, err := s.db.Exec("UPDATE habits SET habit = ? WHERE id = ?", name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Habit{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return models.Habit{}, fmt.Errorf("failed to rename habit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to check rename result: %w", err)
	}
	if affected == 0 {
		return models.Habit{}, fmt.Errorf("%w: habit %d", ErrNotFound, id)
	}

	return models.Habit{ID: id, Name: name}, nil
}

// DeleteHabit removes a habit; its records go with it via the cascade.
func (s *SQLiteStore) DeleteHabit(id int64) error {
	res, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: habit %d", ErrNotFound, id)
	}

	return nil
}

func (s *SQLiteStore) AddRecord(habitID int64, date string) (models.Record, error) {
	parsed, err := validation.Date(date)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	day := parsed.Format("2006-01-02")

	res, err := s.db.Exec("INSERT INTO records (habit_id, date) VALUES (?, ?)", habitID, day)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Record{}, fmt.Errorf("%w: %s", ErrDuplicateDate, day)
		}
		if isForeignKeyViolation(err) {
			return models.Record{}, fmt.Errorf("%w: habit %d", ErrNotFound, habitID)
		}
		return models.Record{}, fmt.Errorf("failed to add record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to read record id: %w", err)
	}

	return models.Record{ID: id, HabitID: habitID, Date: day}, nil
}

func (s *SQLiteStore) GetRecord(id int64) (models.Record, error) {
	var r models.Record
	err := s.db.QueryRow("SELECT id, habit_id, date FROM records WHERE id = ?", id).Scan(&r.ID, &r.HabitID, &r.Date)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Record{}, fmt.Errorf("%w: record %d", ErrNotFound, id)
		}
		return models.Record{}, fmt.Errorf("failed to get record: %w", err)
	}
	return r, nil
}

func (s *SQLiteStore) FindRecord(habitID int64, date string) (models.Record, error) {
	var r models.Record
	err := s.db.QueryRow(
		"SELECT id, habit_id, date FROM records WHERE habit_id = ? AND date = ?",
		habitID, strings.TrimSpace(date),
	).Scan(&r.ID, &r.HabitID, &r.Date)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Record{}, fmt.Errorf("%w: record for habit %d on %s", ErrNotFound, habitID, date)
		}
		return models.Record{}, fmt.Errorf("failed to find record: %w", err)
	}
	return r, nil
}

// ListRecords returns a habit's records in chronological order.
func (s *SQLiteStore) ListRecords(habitID int64) ([]models.Record, error) {
	rows, err := s.db.Query(
		"SELECT id, habit_id, date FROM records WHERE habit_id = ? ORDER BY date",
		habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.ID, &r.HabitID, &r.Date); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *SQLiteStore) UpdateRecord(id int64, date string) (models.Record, error) {
	parsed, err := validation.Date(date)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	day := parsed.Format("2006-01-02")

	res, err := s.db.Exec("UPDATE records SET date = ? WHERE id = ?", day, id)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Record{}, fmt.Errorf("%w: %s", ErrDuplicateDate, day)
		}
		return models.Record{}, fmt.Errorf("failed to update record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return models.Record{}, fmt.Errorf("%w: record %d", ErrNotFound, id)
	}

	return s.GetRecord(id)
}

func (s *SQLiteStore) DeleteRecord(id int64) error {
	res, err := s.db.Exec("DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: record %d", ErrNotFound, id)
	}

	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// SQLite reports constraint violations as generic errors; the message text
// is the stable way to tell them apart with the pure-Go driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
