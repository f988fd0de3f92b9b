// Package memrepo keeps users and movies in process memory. It mirrors the
// Mongo repositories, including unique Username/Email and set semantics on
// favorites, and backs STORAGE=memory runs and tests.
package memrepo

import (
	"context"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daniswhoiam/movie-api/internal/models"
	"github.com/daniswhoiam/movie-api/internal/repository"
)

type UserStore struct {
	mu    sync.RWMutex
	users []*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u := s.byUsername(username); u != nil {
		return clone(u), nil
	}
	return nil, nil
}

func (s *UserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (s *UserStore) Insert(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(nil, u.Username, u.Email); err != nil {
		return err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.FavoriteMovies == nil {
		u.FavoriteMovies = []primitive.ObjectID{}
	}
	s.users = append(s.users, clone(u))
	return nil
}

func (s *UserStore) Update(_ context.Context, username string, upd models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.byUsername(username)
	if u == nil {
		return nil, repository.ErrNotFound
	}

	newName, newEmail := u.Username, u.Email
	if upd.Username != nil {
		newName = *upd.Username
	}
	if upd.Email != nil {
		newEmail = *upd.Email
	}
	if err := s.checkUnique(u, newName, newEmail); err != nil {
		return nil, err
	}

	upd.Apply(u)
	return clone(u), nil
}

func (s *UserStore) AddFavorite(_ context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.byUsername(username)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	if !slices.Contains(u.FavoriteMovies, movieID) {
		u.FavoriteMovies = append(u.FavoriteMovies, movieID)
	}
	return clone(u), nil
}

func (s *UserStore) RemoveFavorite(_ context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.byUsername(username)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	u.FavoriteMovies = slices.DeleteFunc(u.FavoriteMovies, func(id primitive.ObjectID) bool {
		return id == movieID
	})
	return clone(u), nil
}

func (s *UserStore) DeleteByUsername(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.Username == username {
			s.users = slices.Delete(s.users, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *UserStore) byUsername(username string) *models.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// checkUnique reports a conflict with any user other than self.
func (s *UserStore) checkUnique(self *models.User, username, email string) error {
	for _, u := range s.users {
		if u == self {
			continue
		}
		if u.Username == username {
			return &repository.DuplicateKeyError{Field: repository.FieldUsername}
		}
		if u.Email == email {
			return &repository.DuplicateKeyError{Field: repository.FieldEmail}
		}
	}
	return nil
}

func clone(u *models.User) *models.User {
	c := *u
	c.FavoriteMovies = slices.Clone(u.FavoriteMovies)
	if c.FavoriteMovies == nil {
		c.FavoriteMovies = []primitive.ObjectID{}
	}
	if u.Birth != nil {
		b := *u.Birth
		c.Birth = &b
	}
	return &c
}

// MovieStore is a fixed catalog.
type MovieStore struct {
	movies []models.Movie
}

func NewMovieStore(movies ...models.Movie) *MovieStore {
	out := make([]models.Movie, len(movies))
	for i, m := range movies {
		if m.ID.IsZero() {
			m.ID = primitive.NewObjectID()
		}
		out[i] = m
	}
	return &MovieStore{movies: out}
}

func (s *MovieStore) List(_ context.Context) ([]models.Movie, error) {
	return slices.Clone(s.movies), nil
}

func (s *MovieStore) FindByTitle(_ context.Context, title string) (*models.Movie, error) {
	for _, m := range s.movies {
		if m.Title == title {
			return &m, nil
		}
	}
	return nil, nil
}

func (s *MovieStore) FindGenre(_ context.Context, name string) (*models.Genre, error) {
	for _, m := range s.movies {
		if m.Genre.Name == name {
			g := m.Genre
			return &g, nil
		}
	}
	return nil, nil
}

func (s *MovieStore) FindDirector(_ context.Context, name string) (*models.Director, error) {
	for _, m := range s.movies {
		if m.Director.Name == name {
			d := m.Director
			return &d, nil
		}
	}
	return nil, nil
}
