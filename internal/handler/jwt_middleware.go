package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/daniswhoiam/movie-api/internal/logger"
	"github.com/daniswhoiam/movie-api/internal/models"
	"github.com/daniswhoiam/movie-api/internal/service"
)

type ctxKey string

const CtxUser ctxKey = "user"

const bearerPrefix = "Bearer "

const forbiddenMsg = "You can only modify your own account."

// JWTAuth validates the bearer token and puts the resolved user in the
// context. Requests without a bearer header never reach the store.
func JWTAuth(authSvc *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			u, err := authSvc.Identify(r.Context(), tokenStr)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					logger.Log(r.Context()).Debug(r.Context(), "token rejected", zap.Error(err))
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				serverError(w, r, "identify token", err)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSelf only lets the owner of /users/{username} through.
func RequireSelf() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := IdentityFromContext(r.Context())
			if u == nil || u.Username != chi.URLParam(r, "username") {
				http.Error(w, forbiddenMsg, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext returns the authenticated user, or nil.
func IdentityFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(CtxUser).(*models.User)
	return u
}

// bearerToken extracts the token from "Bearer <token>". The scheme is
// case-insensitive.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	return header[len(bearerPrefix):], true
}
