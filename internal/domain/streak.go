package domain

import "time"

// CurrentStreak returns the length in days of the consecutive-day run ending
// at the most recent logged date. Duplicate dates collapse to one, time
// components are ignored. An empty input yields 0.
func CurrentStreak(dates []time.Time) int {
	days := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		days[truncateToDay(d)] = struct{}{}
	}

	if len(days) == 0 {
		return 0
	}

	var last time.Time
	for d := range days {
		if d.After(last) {
			last = d
		}
	}

	streak := 1
	for d := last.AddDate(0, 0, -1); ; d = d.AddDate(0, 0, -1) {
		if _, ok := days[d]; !ok {
			break
		}
		streak++
	}

	return streak
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
