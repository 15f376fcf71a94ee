package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// Date parses a user-supplied calendar date. Only the strict YYYY-MM-DD
// form is accepted; anything else, including out-of-range components such
// as month 13, is rejected.
func Date(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty")
	}

	t, err := time.Parse(constants.DateFormat, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", trimmed)
	}

	return t, nil
}

// HabitName normalizes a habit name and rejects empty input.
func HabitName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", fmt.Errorf("habit name cannot be empty")
	}
	return name, nil
}
