package models

// Habit is a named recurring practice tracked one day at a time.
type Habit struct {
	ID   int64
	Name string
}

// Record is a single completion of a habit on a calendar day.
type Record struct {
	ID      int64
	HabitID int64
	Date    string // YYYY-MM-DD
}
