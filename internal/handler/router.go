package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/daniswhoiam/movie-api/internal/logger"
	"github.com/daniswhoiam/movie-api/internal/service"
)

type RouterDeps struct {
	Auth           *service.AuthService
	Users          *service.UserService
	Movies         *service.MovieService
	Logger         *logger.Logger
	AllowedOrigins []string
	// DB is pinged by /health; nil means always healthy.
	DB Pinger
}

func NewRouter(d RouterDeps) http.Handler {
	authH := NewAuthHandler(d.Auth)
	userH := NewUserHandler(d.Users)
	movieH := NewMovieHandler(d.Movies)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(d.Logger))
	r.Use(Recoverer)
	r.Use(AllowedOrigins(d.AllowedOrigins))

	// =============
	// Public routes
	// =============
	r.Get("/", Welcome)
	r.Get("/health", Health(d.DB))
	r.Post("/users", authH.Register)
	r.Post("/login", authH.Login)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// =============
	// JWT protected
	// =============
	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(d.Auth))

		r.Get("/movies", movieH.ListMovies)
		r.Get("/movies/{title}", movieH.GetMovie)
		r.Get("/genres/{title}", movieH.GetGenre)
		r.Get("/directors/{name}", movieH.GetDirector)

		r.Route("/users/{username}", func(r chi.Router) {
			r.Get("/", userH.GetUser)
			r.Get("/favoritemovies", userH.GetFavorites)

			// only the account owner may change it
			r.With(RequireSelf()).Put("/", userH.UpdateUser)
			r.With(RequireSelf()).Delete("/", userH.DeleteUser)
			r.With(RequireSelf()).Patch("/movies/{movieID}", userH.AddFavorite)
			r.With(RequireSelf()).Delete("/movies/{movieID}", userH.RemoveFavorite)
		})
	})

	return r
}
