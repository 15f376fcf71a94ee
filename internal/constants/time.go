package constants

const (
	// DateFormat is the canonical calendar-day format shared by storage,
	// CLI arguments, and the TUI forms.
	DateFormat = "2006-01-02"

	// MenuPageSize is the number of options shown per menu page.
	MenuPageSize = 5
)
