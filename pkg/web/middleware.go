package web

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// bearerPattern mirrors the tolerant matching applied at the gateway:
// scheme is case-insensitive and any whitespace may separate it from the token.
var bearerPattern = regexp.MustCompile(`(?i)Bearer\s+(.*)$`)

// Authenticate checks an Authorization header value against the configured
// token. It returns a rejection reason, empty on success. The token value is
// never logged.
func Authenticate(headerValue, apiToken string) string {
	if headerValue == "" {
		return "Authentication required"
	}
	matches := bearerPattern.FindStringSubmatch(headerValue)
	if matches == nil {
		return "Invalid authorization header format"
	}
	if matches[1] != apiToken {
		return "Invalid token"
	}
	return ""
}

// BearerAuth gates mutating routes behind a static bearer token.
// Rejections carry the UNAUTHORIZED code with a stable message.
func BearerAuth(apiToken string, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if reason := Authenticate(r.Header.Get("Authorization"), apiToken); reason != "" {
				logger.WarnContext(r.Context(), "Request rejected by auth gate",
					"method", r.Method,
					"path", r.URL.Path,
					"reason", reason,
				)
				RespondError(w, logger, http.StatusUnauthorized, CodeUnauthorized, reason)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORS emits the permissive cross-origin headers on every response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "DNT,User-Agent,X-Requested-With,If-Modified-Since,Cache-Control,Content-Type,Range,Authorization")
		h.Set("Access-Control-Expose-Headers", "Content-Length,Content-Range")
		h.Set("Access-Control-Max-Age", "1728000")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StructuredLogger creates a middleware that logs HTTP requests in a structured format.
func StructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			// Get request ID from context and use it to create a structured logger
			reqID := middleware.GetReqID(r.Context())
			requestLogger := logger.With("request_id", reqID)

			defer func() {
				requestLogger.Info("Request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes_written", ww.BytesWritten(),
					"duration_ms", float64(time.Since(start).Nanoseconds())/1e6,
					"remote_addr", r.RemoteAddr,
					"user_agent", r.UserAgent(),
				)
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

// Recoverer is a middleware that recovers from panics and responds with a
// generic internal error envelope.
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("Panic recovered",
						"panic", rvr,
						"request_id", middleware.GetReqID(r.Context()),
					)
					RespondError(w, logger, http.StatusInternalServerError, CodeInternalError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
