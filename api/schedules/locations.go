package schedules

import (
	"net/http"

	"github.com/kilianp07/readingschedule/core/location"
	"github.com/kilianp07/readingschedule/core/model"
	"github.com/kilianp07/readingschedule/pkg/export"
)

// LocationResponse answers a single slot lookup.
type LocationResponse struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Color    string `json:"color,omitempty"`
}

// RulesResponse lists the opening windows and their colors.
type RulesResponse struct {
	Legend []string          `json:"legend"`
	Colors map[string]string `json:"colors"`
}

// NewLocationsHandler serves GET /api/locations. With day and time query
// parameters it resolves one slot, e.g. ?day=Wednesday&time=5:00 pm.
// Without them it returns the legend. An empty location means no facility.
func NewLocationsHandler(cfg export.Config) http.Handler {
	cfg.SetDefaults()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		day, label := q.Get("day"), q.Get("time")
		if day == "" && label == "" {
			writeJSON(w, http.StatusOK, RulesResponse{
				Legend: location.Legend(),
				Colors: map[string]string{
					model.Torrance.String():       cfg.Color(model.Torrance),
					model.ManhattanBeach.String(): cfg.Color(model.ManhattanBeach),
				},
			})
			return
		}
		d, ok := model.ParseWeekday(day)
		if !ok {
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: "invalid day " + day})
			return
		}
		t, ok := location.ParseLabel(label)
		if !ok {
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: "invalid time " + label})
			return
		}
		loc := location.Resolve(d, t)
		writeJSON(w, http.StatusOK, LocationResponse{
			Day:      d.String(),
			Time:     t.String(),
			Location: loc.String(),
			Color:    cfg.Color(loc),
		})
	})
}

// NewHealthHandler serves GET /healthz.
func NewHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
