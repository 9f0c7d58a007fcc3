package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/readingschedule/core/model"
)

func expected(d model.Weekday, h int) model.Location {
	switch d {
	case model.Monday:
		if h >= 9 {
			return model.Torrance
		}
	case model.Tuesday:
		return model.Torrance
	case model.Wednesday:
		if h < 17 {
			return model.Torrance
		}
		return model.ManhattanBeach
	case model.Thursday, model.Friday:
		return model.ManhattanBeach
	case model.Saturday:
		if h < 14 {
			return model.ManhattanBeach
		}
	}
	return model.LocationNone
}

func TestResolveTotal(t *testing.T) {
	days := append([]model.Weekday{}, model.ScheduleDays...)
	days = append(days, model.Sunday)
	for _, d := range days {
		for h := 0; h < 24; h++ {
			for _, m := range []int{0, 30} {
				got := Resolve(d, model.TimeOfDay{Hour: h, Minute: m})
				assert.Equal(t, expected(d, h), got, "%s %02d:%02d", d, h, m)
			}
		}
	}
}

func TestResolveBoundaries(t *testing.T) {
	cases := []struct {
		day  model.Weekday
		hour int
		min  int
		pm   bool
		want model.Location
	}{
		{model.Monday, 9, 0, false, model.Torrance},
		{model.Monday, 8, 30, false, model.LocationNone},
		{model.Monday, 12, 0, false, model.LocationNone},
		{model.Monday, 12, 0, true, model.Torrance},
		{model.Wednesday, 4, 30, true, model.Torrance},
		{model.Wednesday, 5, 0, true, model.ManhattanBeach},
		{model.Wednesday, 5, 0, false, model.Torrance},
		{model.Saturday, 1, 30, true, model.ManhattanBeach},
		{model.Saturday, 2, 0, true, model.LocationNone},
		{model.Saturday, 2, 0, false, model.ManhattanBeach},
		{model.Sunday, 10, 0, false, model.LocationNone},
	}
	for _, c := range cases {
		tod := model.NewTimeOfDay(c.hour, c.min, c.pm)
		if got := Resolve(c.day, tod); got != c.want {
			t.Errorf("%s %s: expected %q got %q", c.day, tod, c.want, got)
		}
	}
}

func TestResolveLabel(t *testing.T) {
	assert.Equal(t, model.ManhattanBeach, ResolveLabel("wednesday", "5:00 pm"))
	assert.Equal(t, model.Torrance, ResolveLabel("Monday", "9:00  AM"))
	assert.Equal(t, model.LocationNone, ResolveLabel("Monday", "8:30 am"))
	assert.Equal(t, model.LocationNone, ResolveLabel("Funday", "9:00 am"))
	assert.Equal(t, model.LocationNone, ResolveLabel("Monday", "9:00"))
	assert.Equal(t, model.LocationNone, ResolveLabel("Monday", "nine am"))
}

func TestLegend(t *testing.T) {
	assert.Equal(t, []string{
		"Torrance: Monday 9:00 am - Wednesday 5:00 pm",
		"Manhattan Beach: Wednesday 5:00 pm - Saturday 2:00 pm",
	}, Legend())
}
