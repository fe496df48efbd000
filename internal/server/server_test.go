package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"normativa/internal/model"
	"normativa/internal/pipeline"
	"normativa/internal/telemetry"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Store.Driver = "memory"
	cfg.Server.RequestsPerMinute = 600
	cfg.Server.Burst = 100

	store := telemetry.NewMemory()
	p := pipeline.NewPipeline(cfg, store, zap.NewNop())
	agg := telemetry.NewAggregator(store, cfg.Promotion)
	return New(cfg.Server, p, agg, zap.NewNop())
}

func validBody() []byte {
	data := model.ReglamentoData{
		RazonSocial:     "Comercial del Sur Ltda",
		RutEmpresa:      "78.555.666-7",
		Giro:            "venta minorista de abarrotes",
		Email:           "administracion@delsur.cl",
		NumTrabajadores: "26-50",
		CategoriaRiesgo: "comercio",
		TrabajoRemoto:   "no",
	}
	body, _ := json.Marshal(data)
	return body
}

func TestHandleGenerate_DeliversDocument(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(validBody()))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.EventID == "" {
		t.Error("expected an event id")
	}
	if len(resp.Sections) == 0 {
		t.Error("expected the assembled sections in the response")
	}
	if resp.Markdown == "" {
		t.Error("expected rendered markdown in the response")
	}
	if resp.Passes != 2 {
		t.Errorf("expected 2 convergence passes, got %d", resp.Passes)
	}
}

func TestHandleGenerate_BlocksOnPlaceholderData(t *testing.T) {
	srv := testServer(t)

	data := model.ReglamentoData{
		RazonSocial:     "Empresa Demo",
		Email:           "demo@random.com",
		NumTrabajadores: "10-25",
		CategoriaRiesgo: "servicios_oficina",
	}
	body, _ := json.Marshal(data)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for placeholder data, got %d", rec.Code)
	}

	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Sections) != 0 {
		t.Error("blocked responses must not include the document")
	}
	if len(resp.Issues) == 0 {
		t.Error("blocked responses must list the issues")
	}
}

func TestHandleGenerate_RejectsWrongMethod(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleGenerate_RejectsBadBody(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleMetrics(t *testing.T) {
	srv := testServer(t)

	// Generate once so the window has an event
	genReq := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(validBody()))
	srv.httpServer.Handler.ServeHTTP(httptest.NewRecorder(), genReq)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp metricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Snapshot.TotalEvents != 1 {
		t.Errorf("expected 1 event in the window, got %d", resp.Snapshot.TotalEvents)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Store.Driver = "memory"
	cfg.Server.RequestsPerMinute = 60
	cfg.Server.Burst = 2

	store := telemetry.NewMemory()
	p := pipeline.NewPipeline(cfg, store, zap.NewNop())
	agg := telemetry.NewAggregator(store, cfg.Promotion)
	srv := New(cfg.Server, p, agg, zap.NewNop())

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
		req.RemoteAddr = "10.1.1.1:5000"
		rec := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rec, req)
		last = rec.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after exhausting the burst, got %d", last)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	if got := clientIP(req); got != "10.0.0.9" {
		t.Errorf("expected host without port, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	if got := clientIP(req); got != "203.0.113.5" {
		t.Errorf("expected first forwarded hop, got %q", got)
	}
}
