package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daniswhoiam/movie-api/internal/auth"
	"github.com/daniswhoiam/movie-api/internal/models"
	"github.com/daniswhoiam/movie-api/internal/repository/memrepo"
	"github.com/daniswhoiam/movie-api/internal/service"
)

func seedUsers(t *testing.T) (*service.UserService, *memrepo.UserStore) {
	t.Helper()
	ctx := context.Background()
	users := memrepo.NewUserStore()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	require.NoError(t, users.Insert(ctx, &models.User{Username: "alice123", Password: hash, Email: "a@x.com"}))
	require.NoError(t, users.Insert(ctx, &models.User{Username: "bob", Password: hash, Email: "b@x.com"}))
	return service.NewUserService(users), users
}

func ptr[T any](v T) *T { return &v }

func TestUserGet(t *testing.T) {
	svc, _ := seedUsers(t)

	u, err := svc.Get(context.Background(), "alice123")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = svc.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserUpdatePartial(t *testing.T) {
	svc, users := seedUsers(t)
	ctx := context.Background()

	before, err := users.FindByUsername(ctx, "alice123")
	require.NoError(t, err)

	u, err := svc.Update(ctx, "alice123", service.UpdateUserData{Email: ptr("new@x.com")})
	require.NoError(t, err)
	assert.Equal(t, "alice123", u.Username)
	assert.Equal(t, "new@x.com", u.Email)
	assert.Equal(t, before.Password, u.Password, "password untouched when absent")
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	svc, users := seedUsers(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "alice123", service.UpdateUserData{Password: ptr("newpass")})
	require.NoError(t, err)

	stored, err := users.FindByUsername(ctx, "alice123")
	require.NoError(t, err)
	assert.NotEqual(t, "newpass", stored.Password)
	assert.True(t, auth.CheckPassword("newpass", stored.Password))
	assert.False(t, auth.CheckPassword("secret1", stored.Password))
}

func TestUserUpdateErrors(t *testing.T) {
	svc, _ := seedUsers(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "ghost", service.UpdateUserData{Email: ptr("z@x.com")})
	require.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = svc.Update(ctx, "alice123", service.UpdateUserData{Username: ptr("bob")})
	require.ErrorIs(t, err, service.ErrUsernameTaken)

	_, err = svc.Update(ctx, "alice123", service.UpdateUserData{Email: ptr("b@x.com")})
	require.ErrorIs(t, err, service.ErrEmailTaken)

	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	u, err := svc.Update(ctx, "alice123", service.UpdateUserData{Birth: &birth})
	require.NoError(t, err)
	require.NotNil(t, u.Birth)
	assert.True(t, birth.Equal(*u.Birth))
}

func TestFavoritesAddIsIdempotent(t *testing.T) {
	svc, _ := seedUsers(t)
	ctx := context.Background()
	movie := primitive.NewObjectID()

	once, err := svc.AddFavorite(ctx, "alice123", movie)
	require.NoError(t, err)
	twice, err := svc.AddFavorite(ctx, "alice123", movie)
	require.NoError(t, err)

	assert.Equal(t, once.FavoriteMovies, twice.FavoriteMovies)
	assert.Equal(t, []primitive.ObjectID{movie}, twice.FavoriteMovies)

	favs, err := svc.Favorites(ctx, "alice123")
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{movie}, favs)
}

func TestFavoritesRemoveAbsentIsNoop(t *testing.T) {
	svc, _ := seedUsers(t)
	ctx := context.Background()
	kept := primitive.NewObjectID()

	_, err := svc.AddFavorite(ctx, "alice123", kept)
	require.NoError(t, err)

	u, err := svc.RemoveFavorite(ctx, "alice123", primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{kept}, u.FavoriteMovies)

	u, err = svc.RemoveFavorite(ctx, "alice123", kept)
	require.NoError(t, err)
	assert.Empty(t, u.FavoriteMovies)
}

func TestFavoritesUnknownUser(t *testing.T) {
	svc, _ := seedUsers(t)

	_, err := svc.AddFavorite(context.Background(), "ghost", primitive.NewObjectID())
	require.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = svc.Favorites(context.Background(), "ghost")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	svc, _ := seedUsers(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "alice123"))
	require.ErrorIs(t, svc.Delete(ctx, "alice123"), service.ErrUserNotFound)
}

func TestUserUpdateRejectsUnhashablePassword(t *testing.T) {
	svc, users := seedUsers(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "alice123", service.UpdateUserData{Password: ptr(strings.Repeat("a", auth.MaxPasswordBytes+1))})
	require.ErrorIs(t, err, service.ErrInvalidPassword)
	require.ErrorIs(t, err, auth.ErrPasswordTooLong)

	_, err = svc.Update(ctx, "alice123", service.UpdateUserData{Password: ptr("")})
	require.ErrorIs(t, err, service.ErrInvalidPassword)

	stored, err := users.FindByUsername(ctx, "alice123")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword("secret1", stored.Password))
}
