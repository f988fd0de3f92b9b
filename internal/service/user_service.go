package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/daniswhoiam/movie-api/internal/logger"
	"github.com/daniswhoiam/movie-api/internal/models"
)

type UserService struct {
	users UserStore
}

// UpdateUserData holds the fields present in an update request. Password is
// plaintext and is hashed before it reaches the store.
type UpdateUserData struct {
	Username *string
	Password *string
	Email    *string
	Birth    *time.Time
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) Favorites(ctx context.Context, username string) ([]primitive.ObjectID, error) {
	u, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if u.FavoriteMovies == nil {
		return []primitive.ObjectID{}, nil
	}
	return u.FavoriteMovies, nil
}

// Update replaces only the fields present in data.
func (s *UserService) Update(ctx context.Context, username string, data UpdateUserData) (*models.User, error) {
	upd := models.UserUpdate{
		Username: data.Username,
		Email:    data.Email,
		Birth:    data.Birth,
	}
	if data.Password != nil {
		hash, err := hashPassword(*data.Password)
		if err != nil {
			return nil, err
		}
		upd.Password = &hash
	}

	u, err := s.users.Update(ctx, username, upd)
	if err != nil {
		return nil, wrapUserErr("update user", err)
	}

	logger.Log(ctx).Info(ctx, "user updated", zap.String("username", username))
	return u, nil
}

func (s *UserService) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	u, err := s.users.AddFavorite(ctx, username, movieID)
	if err != nil {
		return nil, wrapUserErr("add favorite", err)
	}
	return u, nil
}

func (s *UserService) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	u, err := s.users.RemoveFavorite(ctx, username, movieID)
	if err != nil {
		return nil, wrapUserErr("remove favorite", err)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.users.DeleteByUsername(ctx, username); err != nil {
		return wrapUserErr("delete user", err)
	}
	logger.Log(ctx).Info(ctx, "user deleted", zap.String("username", username))
	return nil
}

// wrapUserErr keeps domain errors bare so handlers can match them with
// errors.Is, and adds op context to everything else.
func wrapUserErr(op string, err error) error {
	mapped := mapStoreError(err)
	if errors.Is(mapped, ErrUserNotFound) || errors.Is(mapped, ErrUsernameTaken) || errors.Is(mapped, ErrEmailTaken) {
		return mapped
	}
	return fmt.Errorf("%s: %w", op, err)
}
