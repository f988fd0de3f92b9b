package memrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daniswhoiam/movie-api/internal/models"
	"github.com/daniswhoiam/movie-api/internal/repository"
)

func TestUserStoreUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	require.NoError(t, s.Insert(ctx, &models.User{Username: "alice123", Email: "a@x.com"}))

	var dup *repository.DuplicateKeyError

	err := s.Insert(ctx, &models.User{Username: "alice123", Email: "other@x.com"})
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, repository.FieldUsername, dup.Field)

	err = s.Insert(ctx, &models.User{Username: "bob", Email: "a@x.com"})
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, repository.FieldEmail, dup.Field)
}

func TestUserStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	require.NoError(t, s.Insert(ctx, &models.User{Username: "alice123", Email: "a@x.com"}))
	require.NoError(t, s.Insert(ctx, &models.User{Username: "bob", Email: "b@x.com"}))

	email := "alice@x.com"
	u, err := s.Update(ctx, "alice123", models.UserUpdate{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "alice123", u.Username)
	assert.Equal(t, "alice@x.com", u.Email)

	taken := "bob"
	_, err = s.Update(ctx, "alice123", models.UserUpdate{Username: &taken})
	var dup *repository.DuplicateKeyError
	require.True(t, errors.As(err, &dup))

	same := "alice123"
	_, err = s.Update(ctx, "alice123", models.UserUpdate{Username: &same})
	require.NoError(t, err, "keeping your own username is not a conflict")

	_, err = s.Update(ctx, "ghost", models.UserUpdate{Email: &email})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserStoreFavorites(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	require.NoError(t, s.Insert(ctx, &models.User{Username: "alice123", Email: "a@x.com"}))
	movie := primitive.NewObjectID()

	_, err := s.AddFavorite(ctx, "alice123", movie)
	require.NoError(t, err)
	u, err := s.AddFavorite(ctx, "alice123", movie)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{movie}, u.FavoriteMovies)

	u, err = s.RemoveFavorite(ctx, "alice123", primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{movie}, u.FavoriteMovies)

	u, err = s.RemoveFavorite(ctx, "alice123", movie)
	require.NoError(t, err)
	assert.Empty(t, u.FavoriteMovies)

	_, err = s.AddFavorite(ctx, "ghost", movie)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	require.NoError(t, s.Insert(ctx, &models.User{Username: "alice123", Email: "a@x.com"}))

	u, err := s.FindByUsername(ctx, "alice123")
	require.NoError(t, err)
	u.Email = "mutated@x.com"

	again, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", again.Email)
}

func TestUserStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	require.NoError(t, s.Insert(ctx, &models.User{Username: "alice123", Email: "a@x.com"}))

	require.NoError(t, s.DeleteByUsername(ctx, "alice123"))
	require.ErrorIs(t, s.DeleteByUsername(ctx, "alice123"), repository.ErrNotFound)

	u, err := s.FindByUsername(ctx, "alice123")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestMovieStore(t *testing.T) {
	ctx := context.Background()
	s := NewMovieStore(models.Movie{
		Title:    "Inception",
		Genre:    models.Genre{Name: "Thriller"},
		Director: models.Director{Name: "Christopher Nolan"},
	})

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].ID.IsZero())

	m, err := s.FindByTitle(ctx, "Inception")
	require.NoError(t, err)
	require.NotNil(t, m)

	g, err := s.FindGenre(ctx, "Thriller")
	require.NoError(t, err)
	require.NotNil(t, g)

	d, err := s.FindDirector(ctx, "Nobody")
	require.NoError(t, err)
	assert.Nil(t, d)

	empty, err := NewMovieStore().List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
}
