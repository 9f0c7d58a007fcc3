package model

import (
	"fmt"
	"strings"
	"unicode"
)

// Weekday identifies a day of the reading week. Sunday exists so that the
// location rules are total but it never appears as a schedule column.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// ScheduleDays lists the schedule columns in display order.
var ScheduleDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// String returns the capitalized day name.
func (d Weekday) String() string {
	if n, ok := weekdayNames[d]; ok {
		return n
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

// Valid reports whether d is one of the seven known days.
func (d Weekday) Valid() bool {
	_, ok := weekdayNames[d]
	return ok
}

// Scheduled reports whether d is a schedule column (Monday to Saturday).
func (d Weekday) Scheduled() bool { return d >= Monday && d <= Saturday }

// Index returns the zero based column position of a scheduled day, or -1.
func (d Weekday) Index() int {
	if !d.Scheduled() {
		return -1
	}
	return int(d - Monday)
}

// ParseWeekday accepts full names and abbreviations of at least three
// letters ("wed", "Thurs") in any case.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for d, n := range weekdayNames {
		if strings.HasPrefix(strings.ToLower(n), s) {
			return d, true
		}
	}
	return 0, false
}

// FindWeekday returns the weekday named in s. Words are tried first, so
// abbreviations such as "Wed evening" or "Thu/Fri" resolve. Otherwise the
// first full day name contained anywhere in s wins, in schedule order then
// Sunday, which covers "Mondays" or "Monday-morning".
func FindWeekday(s string) (Weekday, bool) {
	words := strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	for _, w := range words {
		if d, ok := ParseWeekday(w); ok {
			return d, true
		}
	}
	lower := strings.ToLower(s)
	for _, d := range append(ScheduleDays[:len(ScheduleDays):len(ScheduleDays)], Sunday) {
		if strings.Contains(lower, strings.ToLower(d.String())) {
			return d, true
		}
	}
	return 0, false
}

// MarshalText encodes the day as its name.
func (d Weekday) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a day name.
func (d *Weekday) UnmarshalText(b []byte) error {
	v, ok := ParseWeekday(string(b))
	if !ok {
		return fmt.Errorf("unknown weekday %q", string(b))
	}
	*d = v
	return nil
}
