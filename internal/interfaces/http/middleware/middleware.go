// Package middleware provides HTTP middleware for Chi router.
// Middleware components handle cross-cutting concerns like logging,
// rate limiting, metrics and request tracing.
//
// Chi Middleware Philosophy:
//   - Uses standard net/http handlers
//   - Composable middleware chain
//   - Context-based request scoping
//   - Compatible with any net/http middleware
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hapkiduki/resin-calc/internal/application/dto"
	"github.com/hapkiduki/resin-calc/internal/application/port"
	"github.com/hapkiduki/resin-calc/pkg/logger"
)

// RequestIDHeader is the header name for request IDs.
const RequestIDHeader = "X-Request-ID"

// GetRequestID extracts the request ID from the context.
//
// Parameters:
//   - ctx: the request context
//
// Returns:
//   - string: the request ID, or empty string if not found
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(logger.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestID generates a unique request ID for each request.
// The ID is added to the response headers and request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if request already has an ID (e.g., from a gateway)
		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}

		ctx := logger.ContextWithRequestID(r.Context(), requestID)
		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logger returns a middleware that logs HTTP request.
// It logs request method, path, status, latency, and client IP.
//
// Parameters:
//   - log: The logger to use
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Logger(log port.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			ww := wrap(w)

			next.ServeHTTP(ww, r)

			log.WithContext(r.Context()).Info("HTTP Request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.statusCode,
				"bytes", ww.bytes,
				"latency_ms", time.Since(start).Milliseconds(),
				"client_ip", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
	written    bool
}

func wrap(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.written {
		return
	}
	rw.statusCode = code
	rw.written = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write implements http.ResponseWriter.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// writeError writes the standard JSON error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.NewErrorResponse[any](code, message))
}

// Recoverer returns a middleware that recovers from panics.
// It logs the panic and returns a 500 Internal Server Error response.
//
// Parameters:
//   - log: The logger to use
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Recoverer(log port.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.WithContext(r.Context()).Error("Panic recovered",
					"error", rec,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				writeError(w, http.StatusInternalServerError, dto.CodeInternal, "An unexpected error occurred")
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiterConfig contains rate limiter configuration.
type RateLimiterConfig struct {
	// RequestsPerSecond is the number of requests allowed per second.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int

	// KeyFunc extracts the key for rate limiting (e.g., client IP).
	KeyFunc func(*http.Request) string
}

// DefaultRateLimiterConfig returns the default rate limiter configuration.
//
// Returns:
//   - RateLimiterConfig: default configuration
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 10,
		Burst:             20,
		KeyFunc:           ClientIP,
	}
}

// ClientIP returns the host part of RemoteAddr, or RemoteAddr itself when it has no port.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimiter returns a middleware that limits request rate per client.
// It uses a token bucket algorithm with per-client buckets.
//
// Parameters:
//   - config: Rate limiter configuration
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func RateLimiter(config RateLimiterConfig) func(http.Handler) http.Handler {
	if config.KeyFunc == nil {
		config.KeyFunc = ClientIP
	}

	limiters := make(map[string]*rate.Limiter)
	mu := sync.RWMutex{}

	getLimiter := func(key string) *rate.Limiter {
		mu.RLock()
		limiter, exists := limiters[key]
		mu.RUnlock()

		if exists {
			return limiter
		}

		mu.Lock()
		defer mu.Unlock()

		// Double-check after acquiring write lock
		if limiter, exists = limiters[key]; exists {
			return limiter
		}

		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
		limiters[key] = limiter
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := getLimiter(config.KeyFunc(r))

			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, dto.CodeRateLimited, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SecureHeaders returns a middleware that adds security headers.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// Strict transport security (if using HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

		// Content Security Policy
		w.Header().Set("Content-Security-Policy", "default-src 'self'")

		// Referrer Policy
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

// APIVersion returns a middleware that adds API version header.
//
// Parameters:
//   - version: The API version string
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func APIVersion(version string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-API-Version", version)
			next.ServeHTTP(w, r)
		})
	}
}

// ContentTypeJSON ensures requests carrying a body on write methods are JSON.
// Parameters such as "; charset=utf-8" are accepted.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				writeError(w, http.StatusUnsupportedMediaType, dto.CodeUnsupportedMediaType, "Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// MaxBodySize limits request bodies to limit bytes.
//
// Parameters:
//   - limit: maximum body size in bytes
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout returns a middleware that enforces a request timeout.
// The handler runs on the request goroutine with a deadline on its context;
// if the deadline passed and the handler wrote nothing, a 504 is sent.
//
// Parameters:
//   - timeout: Maximum request duration
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := wrap(w)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if !ww.written && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				writeError(ww, http.StatusGatewayTimeout, dto.CodeTimeout, "Request timed out")
			}
		})
	}
}

// RealIP extracts the real client IP from X-Forwarded-For or X-Real-IP headers.
// Only the first (client) entry of X-Forwarded-For is used.
func RealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				r.RemoteAddr = ip
			}
		} else if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); xrip != "" {
			r.RemoteAddr = xrip
		}

		next.ServeHTTP(w, r)
	})
}

// Metrics records request count and latency per route pattern.
//
// Parameters:
//   - m: metrics recorder
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Metrics(m port.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := wrap(w)

			next.ServeHTTP(ww, r)

			tags := map[string]string{
				"method": r.Method,
				"route":  routePattern(r),
				"status": strconv.Itoa(ww.statusCode),
			}
			m.Counter("http_requests_total", 1, tags)
			m.Timing("http_request_duration", time.Since(start), tags)
		})
	}
}

// routePattern keeps label cardinality bounded by using chi's matched pattern.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
