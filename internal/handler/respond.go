package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/daniswhoiam/movie-api/internal/logger"
)

const internalErrorBody = "Error: Internal Server Error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// serverError logs err and answers 500 without echoing it.
func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.Log(r.Context()).Error(r.Context(), msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	http.Error(w, internalErrorBody, http.StatusInternalServerError)
}
