// Package server hosts the dashboard over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ukaji3/trainboard-go/internal/logging"
	"github.com/ukaji3/trainboard-go/pkg/trainboard"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/render"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/source"
)

// Config holds the listener settings.
type Config struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Server serves the dashboard page, health checks and metrics.
type Server struct {
	cfg        Config
	src        source.Source
	opts       trainboard.Options
	logger     *logging.Logger
	metrics    *Metrics
	httpServer *http.Server
}

// New creates a server reading worksheets from src.
func New(cfg Config, src source.Source, opts trainboard.Options, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NopLogger()
	}
	metrics := NewMetrics()
	s := &Server{
		cfg:     cfg,
		src:     metrics.Instrument(src),
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())

	handler := requestIDMiddleware(accessLogMiddleware(logger)(securityHeadersMiddleware(mux)))
	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sel := ParseSelection(r)
	vp := ParseViewport(r)
	logger := s.logger.WithRequest(RequestID(r.Context()))

	page, err := trainboard.Build(r.Context(), s.src, sel, vp, s.opts)
	status := http.StatusOK
	outcome := "ok"
	if err != nil {
		status = http.StatusBadGateway
		outcome = "error"
		var fe *trainboard.FetchError
		if errors.As(err, &fe) {
			logger.Warn("sheet fetch failed", "sheet", fe.Sheet, "error", fe.Err)
		} else {
			logger.Error("dashboard build failed", "error", err)
		}
	}

	var buf bytes.Buffer
	if err := render.RenderPage(&buf, page); err != nil {
		logger.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	elapsed := time.Since(start)
	s.metrics.renders.WithLabelValues(page.Mode, outcome).Inc()
	s.metrics.renderDuration.WithLabelValues(page.Mode).Observe(elapsed.Seconds())
	logger.Debug("dashboard rendered", "mode", page.Mode, "tab", page.ActiveTab, "duration", elapsed)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
}
