package model

import "fmt"

// TimeOfDay is a wall-clock time kept in 24-hour form.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay converts a 12-hour reading into the 24-hour form.
// 12 am is midnight, 12 pm is noon and other pm hours are shifted by 12.
func NewTimeOfDay(hour, minute int, pm bool) TimeOfDay {
	switch {
	case hour == 12 && !pm:
		hour = 0
	case hour != 12 && pm:
		hour += 12
	}
	return TimeOfDay{Hour: hour, Minute: minute}
}

// Valid reports whether the hour and minute are in range.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// Before orders times within a day.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.Minutes() < o.Minutes() }

// String renders the display label, e.g. "5:00 pm" or "12:30 am".
func (t TimeOfDay) String() string {
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if t.Hour >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute, suffix)
}

// Clock renders the 24-hour form, e.g. "17:00".
func (t TimeOfDay) Clock() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// MarshalText encodes the display label.
func (t TimeOfDay) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Slot addresses one cell of the weekly schedule.
type Slot struct {
	Day  Weekday
	Time TimeOfDay
}

func (s Slot) String() string { return s.Day.String() + " " + s.Time.String() }
