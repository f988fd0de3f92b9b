// internal/service/movie_service.go
package service

import (
	"context"

	"github.com/daniswhoiam/movie-api/internal/models"
)

type MovieService struct {
	movies MovieStore
}

func NewMovieService(m MovieStore) *MovieService {
	return &MovieService{movies: m}
}

func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

// The lookups below return (nil, nil) when nothing matches.

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return s.movies.FindByTitle(ctx, title)
}

func (s *MovieService) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	return s.movies.FindGenre(ctx, name)
}

func (s *MovieService) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	return s.movies.FindDirector(ctx, name)
}
