package streak

import (
	"sort"
	"time"
)

// Longest returns the length of the longest run of consecutive calendar
// days in dates. Duplicate days count once and ordering does not matter.
// An empty set has a streak of 0; a single day has a streak of 1.
func Longest(dates []time.Time) int {
	days := normalize(dates)
	if len(days) == 0 {
		return 0
	}

	longest := 1
	current := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}

	return longest
}

// Current returns the length of the run that is still alive as of today:
// the consecutive-day run ending on today or yesterday. A run that ended
// earlier has gone cold and counts as 0.
func Current(dates []time.Time, today time.Time) int {
	days := normalize(dates)
	if len(days) == 0 {
		return 0
	}

	t := truncate(today)
	last := days[len(days)-1]
	if !last.Equal(t) && !last.Equal(t.AddDate(0, 0, -1)) {
		return 0
	}

	count := 1
	for i := len(days) - 2; i >= 0; i-- {
		if days[i+1].Sub(days[i]) != 24*time.Hour {
			break
		}
		count++
	}

	return count
}

// normalize collapses timestamps to calendar days in UTC, dedupes, and
// sorts ascending so runs can be found in a single scan.
func normalize(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := truncate(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
