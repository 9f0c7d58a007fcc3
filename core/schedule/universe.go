package schedule

import (
	"sort"

	"github.com/kilianp07/readingschedule/core/model"
	"github.com/kilianp07/readingschedule/core/normalize"
)

// ExplicitUniverse returns the distinct times in ascending order. Equal
// times keep the position of their first occurrence.
func ExplicitUniverse(times []model.TimeOfDay) []model.TimeOfDay {
	seen := make(map[model.TimeOfDay]bool, len(times))
	out := make([]model.TimeOfDay, 0, len(times))
	for _, t := range times {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// GridUniverse returns every slot of the day, 0:00 to 23:30 for the default
// half-hour step.
func GridUniverse(stepMinutes int) []model.TimeOfDay {
	return normalize.Grid{StepMinutes: stepMinutes}.Times()
}
