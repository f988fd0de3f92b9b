package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daniswhoiam/movie-api/internal/models"
)

// UserStore is the credential store. Finds return (nil, nil) when nothing
// matches; mutations return repository.ErrNotFound or
// *repository.DuplicateKeyError.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
	Update(ctx context.Context, username string, upd models.UserUpdate) (*models.User, error)
	AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	DeleteByUsername(ctx context.Context, username string) error
}

// MovieStore is the read-only catalog.
type MovieStore interface {
	List(ctx context.Context) ([]models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	FindGenre(ctx context.Context, name string) (*models.Genre, error)
	FindDirector(ctx context.Context, name string) (*models.Director, error)
}
