package schedule

import (
	"fmt"
	"strings"

	"github.com/kilianp07/readingschedule/core/model"
)

// Selection is the parsed "<day> at <location>" field of a roster row.
type Selection struct {
	Day      model.Weekday
	HasDay   bool
	Location model.Location
}

// ParseSelection reads values such as "Wednesday at Manhattan Beach" or
// "Mondays at Torrance". The day may appear anywhere before " at ", as an
// abbreviation or inside a longer word. The location is mandatory, the day
// is not.
func ParseSelection(s string) (Selection, error) {
	folded := strings.Join(strings.Fields(s), " ")
	i := strings.LastIndex(strings.ToLower(folded), " at ")
	if i < 0 {
		return Selection{}, fmt.Errorf("selection %q: expected \"<day> at <location>\"", s)
	}
	loc, ok := model.ParseLocation(folded[i+len(" at "):])
	if !ok {
		return Selection{}, fmt.Errorf("selection %q: unknown location", s)
	}
	sel := Selection{Location: loc}
	sel.Day, sel.HasDay = model.FindWeekday(folded[:i])
	return sel, nil
}
