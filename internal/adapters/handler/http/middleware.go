package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/courseboard/api/internal/core/ports"
	"github.com/courseboard/api/internal/metrics"
)

type contextKey string

// UserIDKey holds the authenticated user's ID in the request context.
const UserIDKey contextKey = "user_id"

// NewAuthMiddleware returns the authorization gate for protected routes.
// A request passes only when it carries a bearer token that verifies and
// resolves to an existing user; anything else is rejected with 401
// before the handler runs.
func NewAuthMiddleware(auth ports.AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				slog.Warn("authorization header invalid",
					slog.String("error", err.Error()),
					slog.String("path", r.URL.Path),
				)
				writeMessage(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			user, err := auth.Authorize(r.Context(), token)
			if err != nil {
				slog.Warn("token validation failed",
					slog.String("error", err.Error()),
					slog.String("path", r.URL.Path),
				)
				writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// NewMetricsMiddleware records status and latency for every request.
func NewMetricsMiddleware(collector *metrics.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			collector.RecordRequest(rec.statusCode, time.Since(start))
		})
	}
}
