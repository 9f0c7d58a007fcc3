package model

import "strings"

// StatusActive marks a registrant that takes part in the schedule.
const StatusActive = "active"

// SlotFlag is one slot column of a registration row.
type SlotFlag struct {
	Column int
	Time   TimeOfDay
	// Day is set when the column header names a weekday or a date.
	Day    Weekday
	HasDay bool
	Set    bool
}

// Registration is one roster row. It is treated as read-only while a
// schedule is being built.
type Registration struct {
	Row       int
	FirstName string
	LastName  string
	Status    string
	// Selection holds the raw "<day> at <location>" field when the roster
	// carries one.
	Selection    string
	HasSelection bool
	Flags        []SlotFlag
}

// Active reports whether the registrant's status is Active.
func (r Registration) Active() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), StatusActive)
}

// FullName joins first and last name with a single space.
func (r Registration) FullName() string {
	first := strings.TrimSpace(r.FirstName)
	last := strings.TrimSpace(r.LastName)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

// Table is a raw tabular dataset: one header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Column returns the index of the header matching name ignoring case and
// surrounding spaces, or -1.
func (t Table) Column(name string) int {
	for i, h := range t.Headers {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed value at row/column, or "" when out of range.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}
