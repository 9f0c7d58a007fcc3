// Package schedule resolves a roster of slot registrations into the weekly
// reading schedule.
//
// A pass validates the dataset layout, normalizes its slot headers, picks the
// row universe and places every active registrant into the cells whose
// facility, as given by the location rules, agrees with the registration.
// Problems confined to one row or column are counted and skipped; only a
// missing required column rejects the dataset.
package schedule

import (
	"github.com/kilianp07/readingschedule/core/location"
	"github.com/kilianp07/readingschedule/core/model"
)

// Options tune a single aggregation pass.
type Options struct {
	Policy LocationPolicy
}

// Stats reports what a pass placed and what it skipped.
type Stats struct {
	Registrations int            `json:"registrations"`
	Active        int            `json:"active"`
	Placed        int            `json:"placed"`
	Skipped       map[string]int `json:"skipped"`
}

type skipFunc func(reason string, fields map[string]any)

// Aggregate builds one row per universe time with a cell per scheduled day.
// Names appear in registration order. Cells whose slot has no facility stay
// empty whatever the flags say. The registrations are not modified.
func Aggregate(regs []model.Registration, universe []model.TimeOfDay, opts Options) model.ScheduleGrid {
	g, _ := aggregate(regs, universe, opts, nil)
	return g
}

func aggregate(regs []model.Registration, universe []model.TimeOfDay, opts Options, onSkip skipFunc) (model.ScheduleGrid, Stats) {
	stats := Stats{Skipped: map[string]int{}}
	skip := func(reason string, fields map[string]any) {
		stats.Skipped[reason]++
		if onSkip != nil {
			onSkip(reason, fields)
		}
	}

	rows := make([]model.Row, len(universe))
	index := make(map[model.TimeOfDay]int, len(universe))
	for i, t := range universe {
		cells := make([]model.Cell, len(model.ScheduleDays))
		for j, d := range model.ScheduleDays {
			cells[j] = model.Cell{Day: d, Names: []string{}, Location: location.Resolve(d, t)}
		}
		rows[i] = model.Row{Time: t, Cells: cells}
		if _, dup := index[t]; !dup {
			index[t] = i
		}
	}

	for _, r := range regs {
		stats.Registrations++
		if !r.Active() {
			continue
		}
		stats.Active++
		name := r.FullName()
		var (
			sel    Selection
			selErr error
		)
		if r.HasSelection {
			sel, selErr = ParseSelection(r.Selection)
		}
		placed := map[model.Slot]bool{}
		for _, f := range r.Flags {
			if !f.Set {
				continue
			}
			fields := map[string]any{"row": r.Row, "column": f.Column, "time": f.Time.String()}
			if name == "" {
				skip(SkipMissingName, fields)
				continue
			}
			day := f.Day
			if !f.HasDay {
				switch {
				case !r.HasSelection:
					skip(SkipUnresolvedDay, fields)
					continue
				case selErr != nil:
					skip(SkipMalformedSel, fields)
					continue
				case !sel.HasDay:
					skip(SkipUnresolvedDay, fields)
					continue
				}
				day = sel.Day
			}
			row, ok := index[f.Time]
			if !ok {
				skip(SkipOffGrid, fields)
				continue
			}
			if !day.Scheduled() {
				skip(SkipClosed, fields)
				continue
			}
			cell := &rows[row].Cells[day.Index()]
			if cell.Location == model.LocationNone {
				skip(SkipClosed, fields)
				continue
			}
			if r.HasSelection && opts.Policy != PolicyIgnore {
				if selErr != nil {
					skip(SkipMalformedSel, fields)
					continue
				}
				if sel.Location != cell.Location {
					skip(SkipLocationMismatch, fields)
					continue
				}
			}
			slot := model.Slot{Day: day, Time: f.Time}
			if placed[slot] {
				continue
			}
			placed[slot] = true
			cell.Names = append(cell.Names, name)
			stats.Placed++
		}
	}
	return model.ScheduleGrid{Rows: rows}, stats
}
