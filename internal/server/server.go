// Package server exposes the document pipeline over HTTP.
// Two endpoints: POST /api/generate runs one request through the
// pipeline, GET /api/metrics aggregates the telemetry window and runs
// the promotion rule.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"normativa/internal/model"
	"normativa/internal/pipeline"
	"normativa/internal/telemetry"
	"normativa/internal/worker"
)

// Server wires the pipeline and the aggregator behind an HTTP mux
type Server struct {
	pipeline   *pipeline.Pipeline
	aggregator *telemetry.Aggregator
	limiter    *worker.Limiter
	logger     *zap.Logger
	cfg        model.ServerConfig
	httpServer *http.Server
}

// New creates a server from configuration
func New(cfg model.ServerConfig, p *pipeline.Pipeline, agg *telemetry.Aggregator, logger *zap.Logger) *Server {
	s := &Server{
		pipeline:   p,
		aggregator: agg,
		limiter:    worker.NewLimiter(cfg.RequestsPerMinute, cfg.Burst),
		logger:     logger,
		cfg:        cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", s.rateLimited(s.handleGenerate))
	mux.HandleFunc("/api/metrics", s.rateLimited(s.handleMetrics))
	mux.HandleFunc("/healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Run serves until the context is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// rateLimited rejects clients that exceed the per-IP budget
func (s *Server) rateLimited(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientIP(r)) {
			s.writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}

type generateResponse struct {
	EventID        string             `json:"eventId"`
	Variant        model.Variant      `json:"variant"`
	Passes         int                `json:"passes"`
	AutofixApplied bool               `json:"autofixApplied"`
	Fixes          []model.FixRef     `json:"fixes,omitempty"`
	Stats          model.AuditStats   `json:"stats"`
	Issues         []model.AuditIssue `json:"issues,omitempty"`
	Sections       []model.Section    `json:"sections,omitempty"`
	Markdown       string             `json:"markdown,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var data model.ReglamentoData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.pipeline.Generate(r.Context(), data)
	if err != nil {
		s.logger.Error("generation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "generation failed")
		return
	}

	ignoreWarnings := r.URL.Query().Get("ignoreWarnings") == "true"
	resp := generateResponse{
		EventID:        result.EventID,
		Variant:        result.Outcome.Variant,
		Passes:         result.Outcome.Passes,
		AutofixApplied: result.Outcome.AutofixApplied,
		Fixes:          result.Outcome.Fixes,
		Stats:          result.Outcome.Result.Stats,
		Issues:         result.Outcome.Result.Issues,
	}

	if !result.Deliverable(ignoreWarnings) {
		// Issues go back to the caller; the document does not
		s.writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	resp.Sections = result.Outcome.Sections
	resp.Markdown = s.pipeline.Renderer().RenderMarkdown(result.Outcome.Sections, data)
	s.writeJSON(w, http.StatusOK, resp)
}

type metricsResponse struct {
	Snapshot      telemetry.Snapshot      `json:"snapshot"`
	NewPromotions []model.PromotionRecord `json:"newPromotions,omitempty"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	promoted, err := s.aggregator.RunPromotions(r.Context())
	if err != nil {
		s.logger.Error("promotion run failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "promotion run failed")
		return
	}

	snap, err := s.aggregator.Snapshot(r.Context())
	if err != nil {
		s.logger.Error("metrics aggregation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "metrics aggregation failed")
		return
	}

	s.writeJSON(w, http.StatusOK, metricsResponse{Snapshot: snap, NewPromotions: promoted})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response encode failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// clientIP strips the port from the remote address; behind a proxy the
// first X-Forwarded-For hop wins
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
