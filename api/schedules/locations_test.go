package schedules

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/readingschedule/pkg/export"
)

func TestLocationsHandler_Slot(t *testing.T) {
	cases := []struct {
		day, time string
		want      string
		color     string
	}{
		{"Wednesday", "5:00 pm", "Manhattan Beach", "#E6FFE6"},
		{"wed", "4:30 pm", "Torrance", "#E6F3FF"},
		{"Monday", "8:00 am", "", ""},
		{"Saturday", "2:00 pm", "", ""},
	}
	h := NewLocationsHandler(export.Config{})
	for _, c := range cases {
		q := url.Values{"day": {c.day}, "time": {c.time}}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/locations?"+q.Encode(), nil))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var out LocationResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
		assert.Equal(t, c.want, out.Location, "%s %s", c.day, c.time)
		assert.Equal(t, c.color, out.Color)
	}
}

func TestLocationsHandler_Legend(t *testing.T) {
	rr := httptest.NewRecorder()
	NewLocationsHandler(export.Config{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/locations", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var out RulesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, []string{
		"Torrance: Monday 9:00 am - Wednesday 5:00 pm",
		"Manhattan Beach: Wednesday 5:00 pm - Saturday 2:00 pm",
	}, out.Legend)
	assert.Equal(t, "#E6F3FF", out.Colors["Torrance"])
}

func TestLocationsHandler_BadInput(t *testing.T) {
	h := NewLocationsHandler(export.Config{})
	for _, target := range []string{
		"/api/locations?day=Funday&time=5:00+pm",
		"/api/locations?day=Monday&time=noon",
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/locations", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
