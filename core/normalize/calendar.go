package normalize

import (
	"time"

	"github.com/kilianp07/readingschedule/core/model"
)

// DefaultYear is the scheduling year used when none is configured.
const DefaultYear = 2025

// Calendar resolves month/day pairs of a single year to weekdays using the
// proleptic Gregorian calendar.
type Calendar struct {
	Year int
}

// Weekday returns the weekday of the given date. It reports false for dates
// that do not exist in the calendar year, such as Feb 30.
func (c Calendar) Weekday(month time.Month, day int) (model.Weekday, bool) {
	year := c.Year
	if year == 0 {
		year = DefaultYear
	}
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return 0, false
	}
	return fromStdWeekday(t.Weekday()), true
}

func fromStdWeekday(d time.Weekday) model.Weekday {
	if d == time.Sunday {
		return model.Sunday
	}
	return model.Weekday(d)
}
