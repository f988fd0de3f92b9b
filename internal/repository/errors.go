package repository

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/daniswhoiam/movie-api/internal/db"
)

const (
	FieldUsername = "Username"
	FieldEmail    = "Email"
)

// ErrNotFound is returned by updates and deletes that matched no document.
// Finds return (nil, nil) instead.
var ErrNotFound = errors.New("document not found")

// DuplicateKeyError reports a unique index violation on Field.
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate " + e.Field
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// classifyWriteError turns a Mongo duplicate key failure into a
// DuplicateKeyError naming the violated field.
func classifyWriteError(err error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, db.UsernameIndex), strings.Contains(msg, FieldUsername+":"):
		return &DuplicateKeyError{Field: FieldUsername, Err: err}
	case strings.Contains(msg, db.EmailIndex), strings.Contains(msg, FieldEmail+":"):
		return &DuplicateKeyError{Field: FieldEmail, Err: err}
	default:
		return &DuplicateKeyError{Field: "unknown", Err: err}
	}
}
