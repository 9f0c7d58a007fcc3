package schedules

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/readingschedule/core/schedule"
)

const roster = "First Name,Last Name,Status,2:00 pm Jan 30,9:00 am Jan 27\n" +
	"Ada,Lovelace,Active,1,1\n" +
	"Pat,Pending,Pending,1,1\n"

func newHandler(opts Options) http.Handler {
	return NewScheduleHandler(schedule.NewResolver(schedule.Config{}, nil, nil), opts)
}

func TestScheduleHandler_RawCSV(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedule?filename=roster.csv", strings.NewReader(roster))
	newHandler(Options{}).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Run-ID"))

	var out Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, rr.Header().Get("X-Run-ID"), out.RunID)
	assert.Equal(t, schedule.ShapeRoster, out.Shape)
	assert.Equal(t, "dated", out.Variant)
	assert.Equal(t, 2, out.Stats.Registrations)
	assert.Equal(t, 1, out.Stats.Active)
	require.Len(t, out.Schedule.Rows, 2)
	assert.Len(t, out.Schedule.Legend, 2)

	mon := out.Schedule.Rows[0].Cells[0]
	assert.Equal(t, "9:00 am", out.Schedule.Rows[0].Time)
	assert.Equal(t, "Ada Lovelace", mon.Names)
	assert.Equal(t, "Torrance", mon.Location)
	thu := out.Schedule.Rows[1].Cells[3]
	assert.Equal(t, "Ada Lovelace", thu.Names)
	assert.Equal(t, "#E6FFE6", thu.Color)
}

func TestScheduleHandler_MultipartCSVFormat(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "roster.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(roster))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedule?format=csv", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	newHandler(Options{}).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/csv")

	recs, err := csv.NewReader(rr.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Time", recs[0][0])
	assert.Equal(t, []string{"2:00 pm", "", "", "", "Ada Lovelace", "", ""}, recs[2])
}

func TestScheduleHandler_XLSX(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedule?format=xlsx", strings.NewReader(roster))
	newHandler(Options{}).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "bible-reading-schedule.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Ada Lovelace", rows[1][1])
}

func TestScheduleHandler_SchemaMismatch(t *testing.T) {
	rr := httptest.NewRecorder()
	body := "First Name,Last Name,5:00 pm\nAda,Lovelace,1\n"
	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(body))
	newHandler(Options{}).ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var out ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, []string{"Status"}, out.Missing)
	assert.Equal(t, "roster", out.Shape)
	assert.Contains(t, out.Required, "Status")
	assert.Contains(t, out.Error, "missing")
}

func TestScheduleHandler_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		method string
		target string
		body   string
		opts   Options
		header string
		want   int
	}{
		{name: "method", method: http.MethodGet, target: "/api/schedule", want: http.StatusMethodNotAllowed},
		{name: "format", method: http.MethodPost, target: "/api/schedule?format=pdf", body: roster, want: http.StatusBadRequest},
		{name: "empty", method: http.MethodPost, target: "/api/schedule", body: "", want: http.StatusBadRequest},
		{name: "too large", method: http.MethodPost, target: "/api/schedule", body: roster, opts: Options{MaxUploadBytes: 16}, want: http.StatusRequestEntityTooLarge},
		{name: "token missing", method: http.MethodPost, target: "/api/schedule", body: roster, opts: Options{Token: "s3cret"}, want: http.StatusUnauthorized},
		{name: "token ok", method: http.MethodPost, target: "/api/schedule", body: roster, opts: Options{Token: "s3cret"}, header: "Bearer s3cret", want: http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(c.method, c.target, strings.NewReader(c.body))
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			newHandler(c.opts).ServeHTTP(rr, req)
			assert.Equal(t, c.want, rr.Code, rr.Body.String())
		})
	}
}
