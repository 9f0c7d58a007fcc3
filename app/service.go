package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/kilianp07/readingschedule/api/schedules"
	"github.com/kilianp07/readingschedule/config"
	coremetrics "github.com/kilianp07/readingschedule/core/metrics"
	"github.com/kilianp07/readingschedule/core/schedule"
	"github.com/kilianp07/readingschedule/infra/logger"
	"github.com/kilianp07/readingschedule/infra/metrics"
)

// Service serves the schedule API.
type Service struct {
	Resolver *schedule.Resolver
	cfg      *config.Config
	handler  http.Handler
	log      logger.Logger
	promPort string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	resolver := schedule.NewResolver(cfg.Schedule, logger.New("schedule"), sink)

	mux := http.NewServeMux()
	mux.Handle("/api/schedule", schedules.NewScheduleHandler(resolver, schedules.Options{
		Export:         cfg.Export,
		MaxUploadBytes: cfg.Server.MaxUploadBytes(),
		Token:          cfg.Server.Token,
		Logger:         logger.New("api"),
	}))
	mux.Handle("/api/locations", schedules.NewLocationsHandler(cfg.Export))
	mux.Handle("/healthz", schedules.NewHealthHandler())

	return &Service{
		Resolver: resolver,
		cfg:      cfg,
		handler:  mux,
		log:      logg,
		promPort: cfg.Metrics.PrometheusPort,
	}, nil
}

// Handler returns the routes served by Run.
func (s *Service) Handler() http.Handler { return s.handler }

// Run serves the API and blocks until the context is cancelled, then shuts
// the server down gracefully.
func (s *Service) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Server.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	if s.promPort != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	srv := &http.Server{Handler: s.handler, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	timeout := time.Duration(s.cfg.Server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Infof("server stopped")
	return nil
}
