package model

import "strings"

// Cell is one weekday entry of a schedule row.
type Cell struct {
	Day      Weekday  `json:"day"`
	Names    []string `json:"names"`
	Location Location `json:"location"`
}

// Text joins the registrant names with ", ".
func (c Cell) Text() string { return strings.Join(c.Names, ", ") }

// Row is one time slot of the schedule with a cell per scheduled day.
type Row struct {
	Time  TimeOfDay `json:"time"`
	Cells []Cell    `json:"cells"`
}

// Cell returns the entry for day d. Unscheduled days yield an empty cell.
func (r Row) Cell(d Weekday) Cell {
	i := d.Index()
	if i < 0 || i >= len(r.Cells) {
		return Cell{Day: d}
	}
	return r.Cells[i]
}

// ScheduleGrid is the weekly table handed to display and export.
type ScheduleGrid struct {
	Rows []Row `json:"rows"`
}

// Find returns the row for t.
func (g ScheduleGrid) Find(t TimeOfDay) (Row, bool) {
	for _, r := range g.Rows {
		if r.Time == t {
			return r, true
		}
	}
	return Row{}, false
}

// Names counts the placed names across all cells.
func (g ScheduleGrid) Names() int {
	n := 0
	for _, r := range g.Rows {
		for _, c := range r.Cells {
			n += len(c.Names)
		}
	}
	return n
}
