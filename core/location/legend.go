package location

import "github.com/kilianp07/readingschedule/core/model"

// Window describes the continuous period a facility is open across the week.
type Window struct {
	Location model.Location
	From     model.Slot
	Until    model.Slot
}

// Windows is the human readable summary of Rules.
var Windows = []Window{
	{
		Location: model.Torrance,
		From:     model.Slot{Day: model.Monday, Time: model.TimeOfDay{Hour: 9}},
		Until:    model.Slot{Day: model.Wednesday, Time: model.TimeOfDay{Hour: 17}},
	},
	{
		Location: model.ManhattanBeach,
		From:     model.Slot{Day: model.Wednesday, Time: model.TimeOfDay{Hour: 17}},
		Until:    model.Slot{Day: model.Saturday, Time: model.TimeOfDay{Hour: 14}},
	},
}

// Legend returns one line per facility, e.g.
// "Torrance: Monday 9:00 am - Wednesday 5:00 pm".
func Legend() []string {
	out := make([]string, 0, len(Windows))
	for _, w := range Windows {
		out = append(out, w.Location.String()+": "+w.From.String()+" - "+w.Until.String())
	}
	return out
}
