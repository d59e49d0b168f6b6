package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(WithHandler(routes))
	if s == nil {
		t.Fatal("expected server instance, got nil")
		return
	}

	if s.config == nil {
		t.Error("expected config to be initialized")
	}

	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	} else if s.httpServer.ErrorLog == nil {
		t.Error("expected httpServer.ErrorLog to forward to slog")
	}

	if s.minuteLimiter == nil || s.hourLimiter == nil {
		t.Error("expected both rate limiters to be initialized by default")
	}
}

func TestDisabledRateLimitWindows(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimitPerMinute = 0
	cfg.RateLimitPerHour = 0

	s := New(WithConfig(cfg))

	if s.minuteLimiter != nil {
		t.Error("expected minute limiter to be disabled")
	}
	if s.hourLimiter != nil {
		t.Error("expected hour limiter to be disabled")
	}

	// With both windows disabled every request passes.
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New(WithVersion("v0.0.1-test"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}

	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("expected status healthy, got %s", resp.Status)
	}

	if len(resp.Services) != 10 {
		t.Errorf("expected 10 services in health response, got %d", len(resp.Services))
	}
	if resp.Services[0] != "summarize_api" {
		t.Errorf("expected first service summarize_api, got %s", resp.Services[0])
	}
	if resp.Services[9] != "weather_business_api" {
		t.Errorf("expected last service weather_business_api, got %s", resp.Services[9])
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
	}{
		{
			name:           "ready state",
			ready:          true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not ready state",
			ready:          false,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			w := httptest.NewRecorder()

			s.handleReady(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRateLimiting(t *testing.T) {
	// Restrictive per-minute window: a single request empties the bucket.
	cfg := NewConfig()
	cfg.RateLimitPerMinute = 1
	cfg.RateLimitPerHour = 0

	s := New(WithConfig(cfg))

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req1 := httptest.NewRequest(http.MethodGet, "/test", nil)
	w1 := httptest.NewRecorder()
	handler(w1, req1)

	if w1.Code != http.StatusOK {
		t.Errorf("expected first request to succeed with status 200, got %d", w1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/test", nil)
	w2 := httptest.NewRecorder()
	handler(w2, req2)

	if w2.Code != http.StatusTooManyRequests {
		t.Errorf("expected rate limit error with status 429, got %d", w2.Code)
	}

	if w2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header to be set")
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w2.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Code != ErrCodeRateLimitExceeded {
		t.Errorf("expected error code %s, got %s", ErrCodeRateLimitExceeded, resp.Code)
	}
	if !resp.Retryable {
		t.Error("expected rate limit rejection to be retryable")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	s := New()

	ok := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	t.Run("generates request ID when not provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		s.requestIDMiddleware(ok)(w, req)

		if w.Header().Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id header to be set")
		}
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		expectedID := "550e8400-e29b-41d4-a716-446655440000"
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-Id", expectedID)
		w := httptest.NewRecorder()

		s.requestIDMiddleware(ok)(w, req)

		if got := w.Header().Get("X-Request-Id"); got != expectedID {
			t.Errorf("expected request ID %s, got %s", expectedID, got)
		}
	})

	t.Run("regenerates invalid UUID", func(t *testing.T) {
		invalidID := "not-a-valid-uuid"
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-Id", invalidID)
		w := httptest.NewRecorder()

		s.requestIDMiddleware(ok)(w, req)

		if got := w.Header().Get("X-Request-Id"); got == invalidID {
			t.Error("expected invalid UUID to be regenerated")
		}
	})
}

func TestPanicRecovery(t *testing.T) {
	s := New()

	panicHandler := func(_ http.ResponseWriter, _ *http.Request) {
		panic("test panic")
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	s.panicRecoveryMiddleware(panicHandler)(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 after panic, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Code != ErrCodeInternalError {
		t.Errorf("expected error code %s, got %s", ErrCodeInternalError, resp.Code)
	}
}
