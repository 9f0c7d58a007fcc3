// Package schedules exposes the schedule resolver over HTTP.
package schedules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/kilianp07/readingschedule/core/logger"
	"github.com/kilianp07/readingschedule/core/model"
	"github.com/kilianp07/readingschedule/core/schedule"
	"github.com/kilianp07/readingschedule/infra/tabular"
	"github.com/kilianp07/readingschedule/pkg/export"
)

// Resolver is the part of schedule.Resolver the handler needs.
type Resolver interface {
	Resolve(t model.Table) (*schedule.Result, error)
}

// Options configure the upload handler.
type Options struct {
	Export export.Config
	// MaxUploadBytes caps the request body. Zero means 10 MiB.
	MaxUploadBytes int64
	// Token, when set, must be presented as "Bearer <token>".
	Token  string
	Logger logger.Logger
}

// Response is the JSON body returned for a resolved dataset.
type Response struct {
	RunID       string          `json:"run_id"`
	Shape       schedule.Shape  `json:"shape"`
	Variant     string          `json:"variant"`
	Columns     []string        `json:"columns"`
	Stats       schedule.Stats  `json:"stats"`
	GeneratedAt time.Time       `json:"generated_at"`
	Schedule    export.Document `json:"schedule"`
}

// ErrorResponse is returned for rejected requests. Missing and Required are
// only set when the dataset lacks required columns.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Shape    string   `json:"shape,omitempty"`
	Missing  []string `json:"missing,omitempty"`
	Required []string `json:"required,omitempty"`
}

const defaultMaxUpload = 10 << 20

// NewScheduleHandler returns an HTTP handler resolving an uploaded dataset via
// POST /api/schedule. The dataset is read from the multipart field "file" or
// from the raw body. The format query parameter selects json (default), csv
// or xlsx output.
func NewScheduleHandler(res Resolver, opts Options) http.Handler {
	opts.Export.SetDefaults()
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUpload
	}
	log := logger.OrNop(opts.Logger)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if opts.Token != "" && r.Header.Get("Authorization") != "Bearer "+opts.Token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		format := r.URL.Query().Get("format")
		switch format {
		case "":
			format = "json"
		case "json", "csv", "xlsx":
		default:
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown format %q", format)})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxUploadBytes)
		name, data, err := readUpload(r, opts.MaxUploadBytes)
		if err != nil {
			status := http.StatusBadRequest
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				status = http.StatusRequestEntityTooLarge
			}
			writeError(w, status, ErrorResponse{Error: err.Error()})
			return
		}
		table, err := tabular.Read(name, bytes.NewReader(data))
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		out, err := res.Resolve(table)
		if err != nil {
			var se *schedule.SchemaError
			if errors.As(err, &se) {
				writeError(w, http.StatusUnprocessableEntity, ErrorResponse{
					Error:    se.Error(),
					Shape:    string(se.Shape),
					Missing:  se.Missing,
					Required: se.Shape.Required(),
				})
				return
			}
			log.Errorf("resolve %s: %v", name, err)
			writeError(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("X-Run-ID", out.RunID)
		switch format {
		case "csv":
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			if err := export.WriteCSV(w, out.Grid); err != nil {
				log.Errorf("write csv: %v", err)
			}
		case "xlsx":
			var buf bytes.Buffer
			if err := export.WriteXLSX(&buf, out.Grid, opts.Export); err != nil {
				log.Errorf("write xlsx: %v", err)
				writeError(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
				return
			}
			w.Header().Set("Content-Type", export.ContentTypeXLSX)
			w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": opts.Export.FileName}))
			_, _ = w.Write(buf.Bytes())
		default:
			writeJSON(w, http.StatusOK, Response{
				RunID:       out.RunID,
				Shape:       out.Shape,
				Variant:     out.Variant,
				Columns:     out.Columns,
				Stats:       out.Stats,
				GeneratedAt: out.GeneratedAt,
				Schedule:    export.NewDocument(out.Grid, opts.Export),
			})
		}
	})
}

// readUpload returns the file name, when known, and the dataset bytes.
func readUpload(r *http.Request, limit int64) (string, []byte, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return "", nil, fmt.Errorf("read body: %w", err)
		}
		return r.URL.Query().Get("filename"), data, nil
	}
	if err := r.ParseMultipartForm(limit); err != nil {
		return "", nil, fmt.Errorf("parse form: %w", err)
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("form field %q: %w", "file", err)
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	return hdr.Filename, data, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, e ErrorResponse) {
	writeJSON(w, status, e)
}
