package service

import (
	"errors"
	"fmt"

	"github.com/daniswhoiam/movie-api/internal/auth"
	"github.com/daniswhoiam/movie-api/internal/repository"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrEmailTaken      = errors.New("email already in use")
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidPassword wraps auth.ErrEmptyPassword or auth.ErrPasswordTooLong.
	ErrInvalidPassword = errors.New("invalid password")
)

// LoginFailureReason says why credentials were rejected.
type LoginFailureReason string

const (
	ReasonNoSuchUser    LoginFailureReason = "no-such-user"
	ReasonWrongPassword LoginFailureReason = "wrong-password"
)

// LoginError is the failure variant of Authenticate. Field names the request
// field that was wrong.
type LoginError struct {
	Reason  LoginFailureReason
	Field   string
	Message string
}

func (e *LoginError) Error() string {
	return e.Message
}

// mapStoreError translates repository errors into service errors.
func mapStoreError(err error) error {
	var dup *repository.DuplicateKeyError
	switch {
	case errors.As(err, &dup) && dup.Field == repository.FieldUsername:
		return ErrUsernameTaken
	case errors.As(err, &dup) && dup.Field == repository.FieldEmail:
		return ErrEmailTaken
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	}
	return err
}

// hashPassword hashes a plaintext password. Input that bcrypt refuses comes
// back as ErrInvalidPassword.
func hashPassword(password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if errors.Is(err, auth.ErrEmptyPassword) || errors.Is(err, auth.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}
	return hash, err
}
