package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func containsHeader(headerValue, target string) bool {
	for part := range strings.SplitSeq(headerValue, ",") {
		if strings.EqualFold(strings.TrimSpace(part), target) {
			return true
		}
	}
	return false
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://localhost/v1/profiles", nil)
	req.Header.Set("Origin", "http://example.com")
	resp := httptest.NewRecorder()

	CORS()(okHandler()).ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin '*', got %q", got)
	}
	exposed := resp.Header().Get("Access-Control-Expose-Headers")
	for _, h := range []string{"Location", "X-Request-Id"} {
		if !containsHeader(exposed, h) {
			t.Fatalf("expected exposed headers to contain %q, got %q", h, exposed)
		}
	}
}

func TestCORSRestrictsConfiguredOrigins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://localhost/v1/profiles", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp := httptest.NewRecorder()

	CORS("http://maps.example")(okHandler()).ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin for foreign origin, got %q", got)
	}
}

func TestCORSHandlesPreflightWithoutCallingNext(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "http://localhost/v1/profiles/1", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "X-Request-Id")
	resp := httptest.NewRecorder()

	CORS()(next).ServeHTTP(resp, req)

	if called {
		t.Fatal("expected preflight to be answered by the CORS handler")
	}
	if !containsHeader(resp.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete) {
		t.Fatalf("expected DELETE to be allowed, got %q", resp.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestVaryAddsAccept(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		w.WriteHeader(http.StatusCreated)
	})
	resp := httptest.NewRecorder()

	Vary()(handler).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	values := resp.Header().Values("Vary")
	if len(values) != 2 || values[0] != "Accept" || values[1] != "Accept-Encoding" {
		t.Fatalf("unexpected Vary values %v", values)
	}
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected downstream status, got %d", resp.Code)
	}
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = chimiddleware.GetReqID(r.Context())
	}))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	id, err := uuid.Parse(seen)
	if err != nil || id.Version() != 4 {
		t.Fatalf("expected UUIDv4 request id, got %q (%v)", seen, err)
	}
	if resp.Header().Get(chimiddleware.RequestIDHeader) != seen {
		t.Fatal("expected response header to echo request id")
	}
}

func TestRequestIDHeaderHandling(t *testing.T) {
	tests := []struct {
		name  string
		value string
		keep  bool
	}{
		{"printable", "abc-123", true},
		{"empty", "", false},
		{"newline", "abc\ndef", false},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"max length", strings.Repeat("a", maxRequestIDLength), true},
		{"non ascii", "id-é", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = chimiddleware.GetReqID(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(chimiddleware.RequestIDHeader, tt.value)

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.keep && seen != tt.value {
				t.Fatalf("expected %q to be kept, got %q", tt.value, seen)
			}
			if !tt.keep && seen == tt.value {
				t.Fatalf("expected %q to be replaced", tt.value)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	resp := httptest.NewRecorder()
	Security("/api-docs")(okHandler()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/map", nil))

	for header, want := range map[string]string{
		"Cache-Control":          "no-store",
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	} {
		if got := resp.Header().Get(header); got != want {
			t.Fatalf("%s: expected %q, got %q", header, want, got)
		}
	}

	docs := httptest.NewRecorder()
	Security("/api-docs")(okHandler()).ServeHTTP(docs, httptest.NewRequest(http.MethodGet, "/api-docs", nil))
	if got := docs.Header().Get("Cache-Control"); got != "" {
		t.Fatalf("expected docs path to be skipped, got Cache-Control %q", got)
	}
}
