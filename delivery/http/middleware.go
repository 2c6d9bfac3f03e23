// Package http contains HTTP delivery implementations for the application
package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/eggmansigma/zuckmyeggs/pkg/api"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// DeckTokenMiddleware guards the investor deck endpoints. Requests must carry
// the configured token in the X-Deck-Token header.
func DeckTokenMiddleware(token string, logger logger.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			provided := r.Header.Get("X-Deck-Token")
			if provided == "" {
				logger.WarnContext(ctx, "Missing X-Deck-Token header")
				apiClient := api.New()
				apiClient.Unauthorized(ctx, w, "X-Deck-Token header is required")
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.WarnContext(ctx, "Invalid X-Deck-Token header")
				apiClient := api.New()
				apiClient.Unauthorized(ctx, w, "Invalid deck token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLoggerMiddleware logs one line per request with the wrapped status
// and duration
func RequestLoggerMiddleware(logger logger.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "HTTP request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
