package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/daniswhoiam/movie-api/internal/logger"
)

const welcomeText = "There will be a sophisticated response soon."

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// @Summary Healthcheck
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {string} string "unavailable"
// @Router /health [get]
func Health(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if p != nil {
			if err := p.Ping(r.Context()); err != nil {
				logger.Log(r.Context()).Warn(r.Context(), "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable"))
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	}
}

// @Summary Welcome
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func Welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(welcomeText))
}
