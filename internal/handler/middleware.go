package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/daniswhoiam/movie-api/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestLogger tags the request with the caller's X-Request-Id, or a fresh
// UUID, echoes it back, attaches base to the context and logs one line per
// finished request.
func RequestLogger(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logger.NewRequestIDContext(r.Context(), r.Header.Get(RequestIDHeader))
			if id, ok := logger.GetRequestID(ctx); ok {
				w.Header().Set(RequestIDHeader, id)
			}
			log := base.With(
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.String("ip", r.RemoteAddr),
			)
			ctx = logger.NewContext(ctx, log)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
			}
			if status >= http.StatusInternalServerError {
				log.Warn(ctx, "request completed", fields...)
				return
			}
			log.Info(ctx, "request completed", fields...)
		})
	}
}

// Recoverer turns a panic into a logged 500.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			ctx := r.Context()
			logger.Log(ctx).Error(ctx, "server panic",
				zap.String("error", fmt.Sprintf("%v", rec)),
				zap.String("stack", string(debug.Stack())),
			)
			http.Error(w, internalErrorBody, http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

// AllowedOrigins rejects requests whose Origin header is not listed.
// Requests without an Origin header pass.
func AllowedOrigins(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		o = strings.ToLower(strings.TrimSpace(o))
		if o != "" {
			allowed[o] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := allowed[strings.ToLower(origin)]; !ok {
				logger.Log(r.Context()).Info(r.Context(), "origin rejected", zap.String("origin", origin))
				http.Error(w, "The CORS policy for this application doesn't allow access from origin "+origin, http.StatusForbidden)
				return
			}

			setCORSHeaders(w, origin)
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func setCORSHeaders(w http.ResponseWriter, origin string) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", origin)
	h.Add("Vary", "Origin")
	h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
}
