package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/readingschedule/core/factory"
	"github.com/kilianp07/readingschedule/core/logger"
	"github.com/kilianp07/readingschedule/core/metrics"
	"github.com/kilianp07/readingschedule/core/model"
	"github.com/kilianp07/readingschedule/core/normalize"
)

// Result is the outcome of resolving one dataset.
type Result struct {
	RunID       string             `json:"run_id"`
	Shape       Shape              `json:"shape"`
	Variant     string             `json:"variant"`
	Columns     []string           `json:"columns"`
	Grid        model.ScheduleGrid `json:"grid"`
	Stats       Stats              `json:"stats"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// Resolver turns uploaded tables into schedules. It holds no state between
// calls and may be shared by concurrent requests.
type Resolver struct {
	cfg  Config
	log  logger.Logger
	sink metrics.MetricsSink
	now  func() time.Time
}

// NewResolver applies defaults to cfg. A nil logger or sink disables that output.
func NewResolver(cfg Config, log logger.Logger, sink metrics.MetricsSink) *Resolver {
	cfg.SetDefaults()
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Resolver{cfg: cfg, log: logger.OrNop(log), sink: sink, now: time.Now}
}

// Config returns the effective settings.
func (r *Resolver) Config() Config { return r.cfg }

// Resolve validates t, then aggregates it into a schedule. The only error
// returned for a readable table is a *SchemaError.
func (r *Resolver) Resolve(t model.Table) (*Result, error) {
	start := r.now()
	shape := DetectShape(t)
	n, err := r.normalizer(shape, t)
	if err != nil {
		return nil, err
	}

	var ds *dataset
	if shape == ShapeGrid {
		ds, err = buildGrid(t, n)
	} else {
		ds, err = buildRoster(t, n)
	}
	if err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			if rec, ok := r.sink.(metrics.RejectionRecorder); ok {
				if rerr := rec.RecordRejection(metrics.RejectionEvent{Shape: string(se.Shape), Missing: se.Missing, Time: start}); rerr != nil {
					r.log.Warnf("record rejection: %v", rerr)
				}
			}
		}
		r.log.Warnf("dataset rejected: %v", err)
		return nil, err
	}
	runID := uuid.NewString()
	for _, note := range ds.notes {
		r.log.Debugw(note.reason, withRun(note.fields, runID))
	}

	universe := ExplicitUniverse(ds.times)
	if r.cfg.Universe == UniverseGrid {
		universe = GridUniverse(r.cfg.SlotMinutes)
	}
	grid, stats := aggregate(ds.regs, universe, Options{Policy: r.cfg.LocationPolicy}, func(reason string, fields map[string]any) {
		r.log.Debugw(reason, withRun(fields, runID))
	})
	for k, v := range ds.skipped {
		stats.Skipped[k] += v
	}

	res := &Result{
		RunID:       runID,
		Shape:       shape,
		Variant:     n.Name(),
		Columns:     append([]string(nil), t.Headers...),
		Grid:        grid,
		Stats:       stats,
		GeneratedAt: r.now(),
	}
	ev := metrics.AggregationEvent{
		RunID:         runID,
		Shape:         string(shape),
		Variant:       n.Name(),
		Rows:          len(grid.Rows),
		Registrations: stats.Registrations,
		Active:        stats.Active,
		Placed:        stats.Placed,
		Skipped:       stats.Skipped,
		Duration:      res.GeneratedAt.Sub(start),
		Time:          res.GeneratedAt,
	}
	if err := r.sink.RecordAggregation(ev); err != nil {
		r.log.Warnf("record aggregation: %v", err)
	}
	r.log.Infof("run %s: %s dataset via %s normalizer, %d rows, %d/%d active registrants, %d names placed",
		runID, shape, n.Name(), len(grid.Rows), stats.Active, stats.Registrations, stats.Placed)
	return res, nil
}

// normalizer returns the configured variant, or detects one from the headers.
func (r *Resolver) normalizer(shape Shape, t model.Table) (normalize.Normalizer, error) {
	if r.cfg.Variant != "" {
		n, err := normalize.New(factory.ModuleConfig{
			Type: r.cfg.Variant,
			Conf: map[string]any{"year": r.cfg.Year, "step_minutes": r.cfg.SlotMinutes},
		})
		if err != nil {
			return nil, fmt.Errorf("normalizer %s: %w", r.cfg.Variant, err)
		}
		return n, nil
	}
	if shape == ShapeGrid {
		return normalize.Bare{}, nil
	}
	return normalize.Detect(t.Headers, normalize.Calendar{Year: r.cfg.Year}), nil
}

func withRun(fields map[string]any, runID string) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["run_id"] = runID
	return out
}
