// internal/handler/movie_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daniswhoiam/movie-api/internal/service"
)

const (
	movieNotFoundMsg    = "No movie with this title was found."
	genreNotFoundMsg    = "No genre with this title was found."
	directorNotFoundMsg = "No director with this name was found."
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary List movies
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.List(r.Context())
	if err != nil {
		serverError(w, r, "list movies", err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// @Summary Get movie by title
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param title path string true "exact title"
// @Success 200 {object} models.Movie
// @Failure 404 {string} string "No movie with this title was found."
// @Router /movies/{title} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.GetByTitle(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		serverError(w, r, "get movie", err)
		return
	}
	if m == nil {
		http.Error(w, movieNotFoundMsg, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Get genre
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param title path string true "genre name"
// @Success 200 {object} models.Genre
// @Failure 404 {string} string "No genre with this title was found."
// @Router /genres/{title} [get]
func (h *MovieHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.GetGenre(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		serverError(w, r, "get genre", err)
		return
	}
	if g == nil {
		http.Error(w, genreNotFoundMsg, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// @Summary Get director
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param name path string true "director name"
// @Success 200 {object} models.Director
// @Failure 404 {string} string "No director with this name was found."
// @Router /directors/{name} [get]
func (h *MovieHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDirector(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		serverError(w, r, "get director", err)
		return
	}
	if d == nil {
		http.Error(w, directorNotFoundMsg, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
