package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// withMiddleware wraps handlers with the common middleware chain.
func (s *Server) withMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return s.metricsMiddleware(
		s.requestIDMiddleware(
			s.panicRecoveryMiddleware( // Recover before rate limiting so panics are always reported
				s.rateLimitMiddleware(
					s.loggingMiddleware(handler),
				),
			),
		),
	)
}

// requestIDMiddleware extracts or generates request IDs.
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Regenerate malformed IDs rather than propagating them
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// rateLimitMiddleware enforces the per-minute and per-hour request windows.
// A request must be admitted by both limiters; a disabled window always
// admits.
func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.minuteLimiter != nil && !s.minuteLimiter.Allow() {
			rateLimitRejects.WithLabelValues("minute").Inc()
			s.rejectRateLimited(w, r, "minute", "1")
			return
		}

		if s.hourLimiter != nil && !s.hourLimiter.Allow() {
			rateLimitRejects.WithLabelValues("hour").Inc()
			s.rejectRateLimited(w, r, "hour", "60")
			return
		}

		if s.minuteLimiter != nil {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", s.config.RateLimitPerMinute))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", int(s.minuteLimiter.Tokens())))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Minute).Unix()))
		}

		next.ServeHTTP(w, r)
	}
}

func (s *Server) rejectRateLimited(w http.ResponseWriter, r *http.Request, window, retryAfter string) {
	w.Header().Set("Retry-After", retryAfter)
	WriteError(w, r, http.StatusTooManyRequests, ErrCodeRateLimitExceeded,
		"Rate limit exceeded", true, map[string]any{
			"window":           window,
			"limit_per_minute": s.config.RateLimitPerMinute,
			"limit_per_hour":   s.config.RateLimitPerHour,
		})
}

// panicRecoveryMiddleware recovers from handler panics.
func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				panicRecoveries.Inc()
				var errMsg string
				switch v := err.(type) {
				case error:
					errMsg = v.Error()
				default:
					errMsg = fmt.Sprintf("%v", v)
				}
				slog.Error("panic recovered",
					"error", errMsg,
					"requestID", r.Context().Value(contextKeyRequestID),
					"path", r.URL.Path,
					"method", r.Method,
				)
				WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
					"Internal server error", true, nil)
			}
		}()
		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware logs requests.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Context().Value(contextKeyRequestID)

		rw := newResponseWriter(w)

		slog.Debug("request started",
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(rw, r)

		slog.Debug("request completed",
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
