package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLoggerUsesRequestLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	access := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodPut, "/v1/selection", nil)
	req = req.WithContext(contextWithLogger(req.Context(), logger))
	access.ServeHTTP(httptest.NewRecorder(), req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusAccepted) {
		t.Fatalf("expected status 202, got %v", fields["status"])
	}
	if fields["path"] != "/v1/selection" {
		t.Fatalf("expected path /v1/selection, got %v", fields["path"])
	}
	if _, ok := fields["duration"]; !ok {
		t.Fatal("expected duration field")
	}
}

func TestRequestLoggerFallsBackToRequestID(t *testing.T) {
	var traceID *string
	handler := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-123"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if traceID == nil || *traceID != "req-123" {
		t.Fatalf("expected trace id req-123, got %v", traceID)
	}
}

func TestRequestLoggerWithTraceHeader(t *testing.T) {
	origProjectID := cachedProjectID
	cachedProjectID = "test-project"
	projectIDOnce = sync.Once{}
	projectIDOnce.Do(func() {})
	defer func() {
		cachedProjectID = origProjectID
		projectIDOnce = sync.Once{}
	}()

	var traceID *string
	handler := RequestLogger()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/map", nil)
	req.Header.Set(traceparentHeader, "00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	want := "projects/test-project/traces/ab42124a3c573678d4d8b21ba52df3bf"
	if traceID == nil || *traceID != want {
		t.Fatalf("expected trace id %s, got %v", want, traceID)
	}
}

func TestTraceFieldsRejectsMalformedHeader(t *testing.T) {
	if fields := traceFields("not-a-trace", "p"); fields != nil {
		t.Fatalf("expected nil fields, got %v", fields)
	}
	if fields := traceFields("00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01", ""); fields != nil {
		t.Fatalf("expected nil fields without project, got %v", fields)
	}
}

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	if LoggerFromContext(context.Background()) != Logger() {
		t.Fatal("expected global logger when context has none")
	}
}

func TestLogAuditEvent(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogAuditEvent(ctx, "delete", "profile", "3", AuditFailure, map[string]any{"error": "not_found"})

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if entries[0].Message != "audit event" {
		t.Fatalf("unexpected message %q", entries[0].Message)
	}
	if fields["audit.action"] != "delete" || fields["audit.resource_id"] != "3" {
		t.Fatalf("unexpected audit fields %v", fields)
	}
	if fields["audit.result"] != AuditFailure {
		t.Fatalf("expected failure result, got %v", fields["audit.result"])
	}
	if _, ok := fields["audit.correlation_id"]; ok {
		t.Fatalf("expected no correlation id outside a request, got %v", fields["audit.correlation_id"])
	}
	details, ok := fields["audit.details"].(map[string]any)
	if !ok || details["error"] != "not_found" {
		t.Fatalf("unexpected details %v", fields["audit.details"])
	}
}

func TestLogAuditEventCarriesCorrelationID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := contextWithTraceID(contextWithLogger(context.Background(), zap.New(core)), "req-77")

	LogAuditEvent(ctx, "create", "profile", "6", AuditSuccess, nil)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["audit.correlation_id"]; got != "req-77" {
		t.Fatalf("expected correlation id req-77, got %v", got)
	}
}
