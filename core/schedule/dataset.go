package schedule

import (
	"strings"

	"github.com/kilianp07/readingschedule/core/model"
	"github.com/kilianp07/readingschedule/core/normalize"
)

// Shape identifies the layout of an uploaded dataset.
type Shape string

const (
	// ShapeGrid is a finished schedule: Time plus one column per weekday,
	// cells holding comma separated names.
	ShapeGrid Shape = "grid"
	// ShapeRoster has one row per person with a flag column per slot.
	ShapeRoster Shape = "roster"
)

// Column names recognised in datasets. Matching ignores case and spacing.
const (
	ColTime      = "Time"
	ColFirstName = "First Name"
	ColLastName  = "Last Name"
	ColStatus    = "Status"
	ColSelection = "Selection"
	// colSlots names the requirement of at least one readable slot column.
	colSlots = "<time slot column>"
)

// Required lists the mandatory columns of the shape.
func (s Shape) Required() []string {
	if s == ShapeGrid {
		out := []string{ColTime}
		for _, d := range model.ScheduleDays {
			out = append(out, d.String())
		}
		return out
	}
	return []string{ColFirstName, ColLastName, ColStatus, colSlots}
}

// DetectShape inspects the headers once: a Time column means a grid.
func DetectShape(t model.Table) Shape {
	if t.Column(ColTime) >= 0 {
		return ShapeGrid
	}
	return ShapeRoster
}

// skip reasons reported in Stats.Skipped and metrics.
const (
	SkipUnparseableColumn = "unparseable_column"
	SkipSundayColumn      = "sunday_column"
	SkipUnparseableRow    = "unparseable_row"
	SkipMissingName       = "missing_name"
	SkipUnresolvedDay     = "unresolved_day"
	SkipMalformedSel      = "malformed_selection"
	SkipLocationMismatch  = "location_mismatch"
	SkipClosed            = "closed_slot"
	SkipOffGrid           = "off_grid"
)

// slotColumn is a roster column that reads as a slot header.
type slotColumn struct {
	index  int
	header normalize.Header
}

// dataset is a validated table converted to registrations.
type dataset struct {
	shape   Shape
	regs    []model.Registration
	times   []model.TimeOfDay // header or Time column order, with duplicates
	skipped map[string]int
	notes   []skipNote
}

type skipNote struct {
	reason string
	fields map[string]any
}

func (d *dataset) skip(reason string, fields map[string]any) {
	d.skipped[reason]++
	d.notes = append(d.notes, skipNote{reason: reason, fields: fields})
}

// buildRoster validates a roster table and extracts its registrations.
func buildRoster(t model.Table, n normalize.Normalizer) (*dataset, error) {
	first, last, status := t.Column(ColFirstName), t.Column(ColLastName), t.Column(ColStatus)
	selection := t.Column(ColSelection)
	var missing []string
	for name, idx := range map[string]int{ColFirstName: first, ColLastName: last, ColStatus: status} {
		if idx < 0 {
			missing = append(missing, name)
		}
	}
	ds := &dataset{shape: ShapeRoster, skipped: map[string]int{}}
	var cols []slotColumn
	for i, h := range t.Headers {
		if i == first || i == last || i == status || i == selection {
			continue
		}
		hd, ok := n.Normalize(h)
		if !ok {
			ds.skip(SkipUnparseableColumn, map[string]any{"column": h})
			continue
		}
		if !hd.Scheduled() {
			ds.skip(SkipSundayColumn, map[string]any{"column": h})
			continue
		}
		cols = append(cols, slotColumn{index: i, header: hd})
		ds.times = append(ds.times, hd.Time)
	}
	if len(cols) == 0 {
		missing = append(missing, colSlots)
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Shape: ShapeRoster, Missing: ordered(missing, ShapeRoster.Required())}
	}

	for r := range t.Rows {
		reg := model.Registration{
			Row:       r,
			FirstName: t.Cell(r, first),
			LastName:  t.Cell(r, last),
			Status:    t.Cell(r, status),
		}
		if selection >= 0 {
			reg.Selection = t.Cell(r, selection)
			reg.HasSelection = reg.Selection != ""
		}
		for _, c := range cols {
			reg.Flags = append(reg.Flags, model.SlotFlag{
				Column: c.index,
				Time:   c.header.Time,
				Day:    c.header.Day,
				HasDay: c.header.HasDay,
				Set:    truthy(t.Cell(r, c.index)),
			})
		}
		ds.regs = append(ds.regs, reg)
	}
	return ds, nil
}

// buildGrid validates a finished schedule and turns each listed name into an
// active registration for its cell.
func buildGrid(t model.Table, n normalize.Normalizer) (*dataset, error) {
	timeCol := t.Column(ColTime)
	dayCols := make([]int, len(model.ScheduleDays))
	var missing []string
	if timeCol < 0 {
		missing = append(missing, ColTime)
	}
	for i, d := range model.ScheduleDays {
		dayCols[i] = t.Column(d.String())
		if dayCols[i] < 0 {
			missing = append(missing, d.String())
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Shape: ShapeGrid, Missing: missing}
	}

	ds := &dataset{shape: ShapeGrid, skipped: map[string]int{}}
	for r := range t.Rows {
		label := t.Cell(r, timeCol)
		hd, ok := n.Normalize(label)
		if !ok || hd.HasDay {
			ds.skip(SkipUnparseableRow, map[string]any{"row": r, "time": label})
			continue
		}
		ds.times = append(ds.times, hd.Time)
		for i, d := range model.ScheduleDays {
			for _, name := range strings.Split(t.Cell(r, dayCols[i]), ",") {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				firstName, lastName, _ := strings.Cut(name, " ")
				ds.regs = append(ds.regs, model.Registration{
					Row:       r,
					FirstName: firstName,
					LastName:  lastName,
					Status:    model.StatusActive,
					Flags: []model.SlotFlag{{
						Column: dayCols[i],
						Time:   hd.Time,
						Day:    d,
						HasDay: true,
						Set:    true,
					}},
				})
			}
		}
	}
	return ds, nil
}

// truthy reads a slot flag. Spreadsheet exports write 1/0, some tools
// write TRUE/FALSE or a check mark.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "1.0", "true", "yes", "y", "x", "✓":
		return true
	}
	return false
}

// ordered sorts missing by its position in ref.
func ordered(missing, ref []string) []string {
	out := make([]string, 0, len(missing))
	for _, r := range ref {
		for _, m := range missing {
			if m == r {
				out = append(out, m)
			}
		}
	}
	return out
}
