package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestCreateHabit(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if habit.ID == 0 {
		t.Error("expected a non-zero habit id")
	}
	if habit.Name != "run" {
		t.Errorf("expected name %q, got %q", "run", habit.Name)
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(habits) != 1 || habits[0].Name != "run" {
		t.Errorf("expected the created habit to be listed, got %v", habits)
	}
}

func TestCreateHabit_DuplicateName(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if _, err := store.CreateHabit("run"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := store.CreateHabit("run")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(habits) != 1 {
		t.Errorf("expected exactly one habit after duplicate create, got %d", len(habits))
	}
}

func TestCreateHabit_InvalidName(t *testing.T) {
	store := setupTestSQLiteStore(t)

	for _, name := range []string{"", "   "} {
		if _, err := store.CreateHabit(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("expected ErrInvalidName for %q, got %v", name, err)
		}
	}
}

func TestCreateHabit_TrimsName(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("  read  ")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if habit.Name != "read" {
		t.Errorf("expected trimmed name %q, got %q", "read", habit.Name)
	}
}

func TestListHabits_LexicalOrder(t *testing.T) {
	store := setupTestSQLiteStore(t)

	for _, name := range []string{"swim", "bike", "run"} {
		if _, err := store.CreateHabit(name); err != nil {
			t.Fatalf("failed to create habit %q: %v", name, err)
		}
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}

	want := []string{"bike", "run", "swim"}
	if len(habits) != len(want) {
		t.Fatalf("expected %d habits, got %d", len(want), len(habits))
	}
	for i, name := range want {
		if habits[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, habits[i].Name)
		}
	}
}

func TestGetHabitByName(t *testing.T) {
	store := setupTestSQLiteStore(t)

	created, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	habit, err := store.GetHabitByName("run")
	if err != nil {
		t.Fatalf("failed to get habit by name: %v", err)
	}
	if habit.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, habit.ID)
	}

	if _, err := store.GetHabitByName("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameHabit(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	renamed, err := store.RenameHabit(habit.ID, "morning run")
	if err != nil {
		t.Fatalf("failed to rename habit: %v", err)
	}
	if renamed.Name != "morning run" {
		t.Errorf("expected renamed habit, got %q", renamed.Name)
	}

	if _, err := store.GetHabitByName("run"); !errors.Is(err, ErrNotFound) {
		t.Errorf("old name should be gone, got %v", err)
	}
}

func TestRenameHabit_Conflicts(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if _, err := store.CreateHabit("swim"); err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	if _, err := store.RenameHabit(habit.ID, "swim"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
	if _, err := store.RenameHabit(habit.ID, "  "); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
	if _, err := store.RenameHabit(9999, "walk"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteHabit_CascadesRecords(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	record, err := store.AddRecord(habit.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("failed to add record: %v", err)
	}
	if _, err := store.AddRecord(habit.ID, "2024-01-02"); err != nil {
		t.Fatalf("failed to add record: %v", err)
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}

	records, err := store.ListRecords(habit.ID)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected cascade to remove records, got %d", len(records))
	}

	if _, err := store.GetRecord(record.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for cascaded record, got %v", err)
	}
}

func TestDeleteHabit_NotFound(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.DeleteHabit(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddRecord_InvalidDate(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	if _, err := store.AddRecord(habit.ID, "2024-13-40"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}

	records, err := store.ListRecords(habit.ID)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("invalid date must not persist a record, got %d", len(records))
	}
}

func TestAddRecord_DuplicateDate(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	if _, err := store.AddRecord(habit.ID, "2024-01-01"); err != nil {
		t.Fatalf("failed to add record: %v", err)
	}

	if _, err := store.AddRecord(habit.ID, "2024-01-01"); !errors.Is(err, ErrDuplicateDate) {
		t.Errorf("expected ErrDuplicateDate, got %v", err)
	}

	records, err := store.ListRecords(habit.ID)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected a single record after duplicate add, got %d", len(records))
	}
}

func TestAddRecord_SameDateDifferentHabits(t *testing.T) {
	store := setupTestSQLiteStore(t)

	run, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	swim, err := store.CreateHabit("swim")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	if _, err := store.AddRecord(run.ID, "2024-01-01"); err != nil {
		t.Fatalf("failed to add record: %v", err)
	}
	if _, err := store.AddRecord(swim.ID, "2024-01-01"); err != nil {
		t.Errorf("same date on a different habit should be allowed, got %v", err)
	}
}

func TestAddRecord_UnknownHabit(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if _, err := store.AddRecord(42, "2024-01-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListRecords_ChronologicalRoundTrip(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	// Insert out of order; listing must come back sorted.
	for _, date := range []string{"2024-01-03", "2024-01-01", "2024-01-02"} {
		if _, err := store.AddRecord(habit.ID, date); err != nil {
			t.Fatalf("failed to add record %s: %v", date, err)
		}
	}

	records, err := store.ListRecords(habit.ID)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}

	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, date := range want {
		if records[i].Date != date {
			t.Errorf("position %d: expected %s, got %s", i, date, records[i].Date)
		}
	}
}

func TestFindRecord(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	created, err := store.AddRecord(habit.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("failed to add record: %v", err)
	}

	record, err := store.FindRecord(habit.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("failed to find record: %v", err)
	}
	if record.ID != created.ID {
		t.Errorf("expected record %d, got %d", created.ID, record.ID)
	}

	if _, err := store.FindRecord(habit.ID, "2024-01-02"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRecord(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	record, err := store.AddRecord(habit.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("failed to add record: %v", err)
	}

	updated, err := store.UpdateRecord(record.ID, "2024-01-05")
	if err != nil {
		t.Fatalf("failed to update record: %v", err)
	}
	if updated.Date != "2024-01-05" {
		t.Errorf("expected updated date, got %s", updated.Date)
	}

	if _, err := store.UpdateRecord(record.ID, "bogus"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := store.UpdateRecord(9999, "2024-01-06"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRecord_DuplicateDate(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if _, err := store.AddRecord(habit.ID, "2024-01-01"); err != nil {
		t.Fatalf("failed to add record: %v", err)
	}
	record, err := store.AddRecord(habit.ID, "2024-01-02")
	if err != nil {
		t.Fatalf("failed to add record: %v", err)
	}

	if _, err := store.UpdateRecord(record.ID, "2024-01-01"); !errors.Is(err, ErrDuplicateDate) {
		t.Errorf("expected ErrDuplicateDate, got %v", err)
	}
}

func TestDeleteRecord(t *testing.T) {
	store := setupTestSQLiteStore(t)

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	record, err := store.AddRecord(habit.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("failed to add record: %v", err)
	}

	if err := store.DeleteRecord(record.ID); err != nil {
		t.Fatalf("failed to delete record: %v", err)
	}
	if err := store.DeleteRecord(record.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	habit, err := store.CreateHabit("run")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if _, err := store.AddRecord(habit.ID, "2024-01-01"); err != nil {
		t.Fatalf("failed to add record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened := NewSQLiteStore(dbPath)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	records, err := reopened.ListRecords(habit.ID)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(records) != 1 || records[0].Date != "2024-01-01" {
		t.Errorf("expected the record to survive a restart, got %v", records)
	}
}
