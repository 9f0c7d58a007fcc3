// Package location maps a weekday and time of day to the facility that hosts
// the reading at that moment.
//
// Torrance hosts from Monday 9:00 am until Wednesday 5:00 pm, Manhattan Beach
// from Wednesday 5:00 pm until Saturday 2:00 pm. Outside those windows no
// facility is open.
package location

import (
	"strconv"
	"strings"

	"github.com/kilianp07/readingschedule/core/model"
)

// Rule assigns a location to a day for hours in [FromHour, ToHour).
type Rule struct {
	Day      model.Weekday
	FromHour int
	ToHour   int
	Location model.Location
}

// Rules is the facility table. Days or hours not covered resolve to
// model.LocationNone.
var Rules = []Rule{
	{Day: model.Monday, FromHour: 9, ToHour: 24, Location: model.Torrance},
	{Day: model.Tuesday, FromHour: 0, ToHour: 24, Location: model.Torrance},
	{Day: model.Wednesday, FromHour: 0, ToHour: 17, Location: model.Torrance},
	{Day: model.Wednesday, FromHour: 17, ToHour: 24, Location: model.ManhattanBeach},
	{Day: model.Thursday, FromHour: 0, ToHour: 24, Location: model.ManhattanBeach},
	{Day: model.Friday, FromHour: 0, ToHour: 24, Location: model.ManhattanBeach},
	{Day: model.Saturday, FromHour: 0, ToHour: 14, Location: model.ManhattanBeach},
}

// Resolve returns the location open on day d at time t. Only the hour is
// significant.
func Resolve(d model.Weekday, t model.TimeOfDay) model.Location {
	for _, r := range Rules {
		if r.Day == d && t.Hour >= r.FromHour && t.Hour < r.ToHour {
			return r.Location
		}
	}
	return model.LocationNone
}

// ResolveLabel resolves a day name and a "5:00 pm" style label as they appear
// in a rendered schedule. Anything unreadable resolves to LocationNone.
func ResolveLabel(day, label string) model.Location {
	d, ok := model.ParseWeekday(day)
	if !ok {
		return model.LocationNone
	}
	t, ok := ParseLabel(label)
	if !ok {
		return model.LocationNone
	}
	return Resolve(d, t)
}

// ParseLabel reads "<h>:<mm> <am|pm>"; the rule table only needs the hour.
func ParseLabel(label string) (model.TimeOfDay, bool) {
	parts := strings.Fields(label)
	if len(parts) < 2 {
		return model.TimeOfDay{}, false
	}
	hh, mm, _ := strings.Cut(parts[0], ":")
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return model.TimeOfDay{}, false
	}
	minute := 0
	if mm != "" {
		if minute, err = strconv.Atoi(mm); err != nil || minute < 0 || minute > 59 {
			return model.TimeOfDay{}, false
		}
	}
	switch strings.ToLower(parts[1]) {
	case "am":
		return model.NewTimeOfDay(hour, minute, false), true
	case "pm":
		return model.NewTimeOfDay(hour, minute, true), true
	}
	return model.TimeOfDay{}, false
}
