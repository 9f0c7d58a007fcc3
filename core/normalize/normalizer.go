// Package normalize turns the many textual encodings of a reading slot found
// in roster exports ("5:00 pm", "5:00 pm Jan 29", "Monday 9:00 am") into a
// canonical time of day plus an optional weekday.
//
// Three variants share the Normalizer interface:
//   - bare: a time, optionally with a weekday name
//   - dated: bare plus month/day hints resolved through a Calendar
//   - grid: only the canonical half-hour labels produced by Grid.Times
//
// Unreadable input is reported with ok=false, never as an error, so callers
// can skip a column and carry on.
package normalize

import (
	"fmt"

	"github.com/kilianp07/readingschedule/core/factory"
	"github.com/kilianp07/readingschedule/core/model"
)

// Header is the normalized form of a slot column header or time label.
type Header struct {
	Time model.TimeOfDay
	// Day is set when the header carried a weekday name or a date.
	Day    model.Weekday
	HasDay bool
	// Dated is set when Day was derived from a calendar date.
	Dated bool
}

// Scheduled reports whether the header can appear in the schedule. Headers
// without a day are always eligible; dated Sundays are not.
func (h Header) Scheduled() bool { return !h.HasDay || h.Day.Scheduled() }

// Normalizer parses one textual encoding of a slot.
type Normalizer interface {
	Name() string
	Normalize(raw string) (Header, bool)
}

// Bare accepts a time optionally combined with a weekday name.
type Bare struct{}

func (Bare) Name() string { return "bare" }

func (Bare) Normalize(raw string) (Header, bool) {
	p, ok := parseHeader(raw)
	if !ok {
		return Header{}, false
	}
	switch p.kind {
	case hintNone:
		return Header{Time: p.time}, true
	case hintWeekday:
		return Header{Time: p.time, Day: p.day, HasDay: true}, true
	}
	return Header{}, false
}

// Dated accepts everything Bare does plus a trailing month/day. The weekday
// of a date is looked up in Calendar unless the header names its own year.
type Dated struct {
	Calendar Calendar
}

func (Dated) Name() string { return "dated" }

func (d Dated) Normalize(raw string) (Header, bool) {
	p, ok := parseHeader(raw)
	if !ok {
		return Header{}, false
	}
	switch p.kind {
	case hintNone:
		return Header{Time: p.time}, true
	case hintWeekday:
		return Header{Time: p.time, Day: p.day, HasDay: true}, true
	case hintDate:
		cal := d.Calendar
		if p.year != 0 {
			cal.Year = p.year
		}
		wd, ok := cal.Weekday(p.month, p.mday)
		if !ok {
			return Header{}, false
		}
		return Header{Time: p.time, Day: wd, HasDay: true, Dated: true}, true
	}
	return Header{}, false
}

// Grid accepts only canonical labels ("5:00 pm") aligned to StepMinutes.
type Grid struct {
	StepMinutes int
}

// DefaultStepMinutes is the slot length of generated grids.
const DefaultStepMinutes = 30

func (Grid) Name() string { return "grid" }

func (g Grid) step() int {
	if g.StepMinutes <= 0 {
		return DefaultStepMinutes
	}
	return g.StepMinutes
}

func (g Grid) Normalize(raw string) (Header, bool) {
	p, ok := parseHeader(raw)
	if !ok || p.kind != hintNone {
		return Header{}, false
	}
	if p.clean != p.time.String() || p.time.Minutes()%g.step() != 0 {
		return Header{}, false
	}
	return Header{Time: p.time}, true
}

// Times generates every slot of the day from 0:00 in steps of StepMinutes.
func (g Grid) Times() []model.TimeOfDay {
	step := g.step()
	out := make([]model.TimeOfDay, 0, 24*60/step)
	for m := 0; m < 24*60; m += step {
		out = append(out, model.TimeOfDay{Hour: m / 60, Minute: m % 60})
	}
	return out
}

var registry = factory.NewRegistry[Normalizer]()

func init() {
	_ = registry.Register("bare", func(map[string]any) (Normalizer, error) {
		return Bare{}, nil
	})
	_ = registry.Register("dated", func(conf map[string]any) (Normalizer, error) {
		var c struct {
			Year int `json:"year"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Year < 0 {
			return nil, fmt.Errorf("invalid year %d", c.Year)
		}
		return Dated{Calendar: Calendar{Year: c.Year}}, nil
	})
	_ = registry.Register("grid", func(conf map[string]any) (Normalizer, error) {
		var c struct {
			StepMinutes int `json:"step_minutes"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.StepMinutes < 0 || (c.StepMinutes > 0 && (24*60)%c.StepMinutes != 0) {
			return nil, fmt.Errorf("step_minutes %d does not divide a day", c.StepMinutes)
		}
		return Grid{StepMinutes: c.StepMinutes}, nil
	})
}

// New builds a normalizer variant from its configuration.
func New(cfg factory.ModuleConfig) (Normalizer, error) {
	return registry.Create(cfg)
}

// Variants lists the registered variant names.
func Variants() []string { return registry.Types() }

// Detect inspects the headers once and returns the variant able to read
// them: dated when any header carries a month/day, bare otherwise.
func Detect(headers []string, cal Calendar) Normalizer {
	dated := Dated{Calendar: cal}
	for _, h := range headers {
		if hd, ok := dated.Normalize(h); ok && hd.Dated {
			return dated
		}
	}
	return Bare{}
}
