package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kilianp07/readingschedule/core/model"
)

var (
	timeRe     = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?(?:\s+(.+))?$`)
	namedDate  = regexp.MustCompile(`^([a-z]{3,9})\.?\s*(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?$`)
	numberDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?$`)
	meridiems  = strings.NewReplacer("a.m.", "am", "p.m.", "pm", "a.m", "am", "p.m", "pm")
)

// hintKind tells what followed the time in a header.
type hintKind int

const (
	hintNone hintKind = iota
	hintWeekday
	hintDate
	hintUnknown
)

type parsed struct {
	time  model.TimeOfDay
	clean string
	kind  hintKind
	day   model.Weekday
	month time.Month
	mday  int
	year  int
}

// clean lowercases s, collapses runs of whitespace and folds dotted
// meridiem spellings.
func clean(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	return meridiems.Replace(s)
}

// parseHeader splits raw into a time of day and an optional trailing or
// leading weekday/date hint.
func parseHeader(raw string) (parsed, bool) {
	s := clean(raw)
	if s == "" {
		return parsed{}, false
	}
	// "Monday 5:00 pm" puts the day first.
	if first, rest, ok := strings.Cut(s, " "); ok {
		if d, isDay := model.ParseWeekday(strings.TrimRight(first, ",")); isDay {
			p, ok := parseHeader(rest)
			if !ok || p.kind != hintNone {
				return parsed{}, false
			}
			p.clean = s
			p.kind, p.day = hintWeekday, d
			return p, true
		}
	}
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return parsed{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return parsed{}, false
	}
	var tod model.TimeOfDay
	switch m[3] {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return parsed{}, false
		}
		tod = model.NewTimeOfDay(hour, minute, m[3] == "pm")
	default:
		// Without a meridiem only an explicit 24-hour clock is accepted.
		if m[2] == "" || hour > 23 {
			return parsed{}, false
		}
		tod = model.TimeOfDay{Hour: hour, Minute: minute}
	}
	p := parsed{time: tod, clean: s}
	hint := strings.Trim(m[4], " ,-()")
	if hint == "" {
		return p, true
	}
	if d, ok := model.ParseWeekday(hint); ok {
		p.kind, p.day = hintWeekday, d
		return p, true
	}
	if month, mday, year, ok := parseDate(hint); ok {
		p.kind, p.month, p.mday, p.year = hintDate, month, mday, year
		return p, true
	}
	p.kind = hintUnknown
	return p, true
}

// parseDate reads "jan 29", "january 29th", "jan 29, 2025" and "1/29".
func parseDate(s string) (time.Month, int, int, bool) {
	if m := namedDate.FindStringSubmatch(s); m != nil {
		month, ok := parseMonth(m[1])
		if !ok {
			return 0, 0, 0, false
		}
		day, _ := strconv.Atoi(m[2])
		year := 0
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return month, day, year, true
	}
	if m := numberDate.FindStringSubmatch(s); m != nil {
		mon, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if mon < 1 || mon > 12 {
			return 0, 0, 0, false
		}
		year := 0
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		return time.Month(mon), day, year, true
	}
	return 0, 0, 0, false
}

func parseMonth(s string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), s) {
			return m, true
		}
	}
	return 0, false
}
