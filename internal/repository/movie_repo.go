// internal/repository/movie_repo.go
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/daniswhoiam/movie-api/internal/db"
	"github.com/daniswhoiam/movie-api/internal/models"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(database *mongo.Database) *MovieRepository {
	return &MovieRepository{col: database.Collection(db.MoviesCollection)}
}

// List returns the whole catalog. An empty catalog is an empty, non-nil slice.
func (r *MovieRepository) List(ctx context.Context) ([]models.Movie, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Movie, 0)
	for cur.Next(ctx) {
		var m models.Movie
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var m models.Movie
	err := r.col.FindOne(ctx, bson.M{"Title": title}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindGenre returns the embedded genre of the first movie whose genre has this
// name.
func (r *MovieRepository) FindGenre(ctx context.Context, name string) (*models.Genre, error) {
	var doc struct {
		Genre models.Genre `bson:"Genre"`
	}
	opts := options.FindOne().SetProjection(bson.M{"Genre": 1})
	err := r.col.FindOne(ctx, bson.M{"Genre.Name": name}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Genre, nil
}

func (r *MovieRepository) FindDirector(ctx context.Context, name string) (*models.Director, error) {
	var doc struct {
		Director models.Director `bson:"Director"`
	}
	opts := options.FindOne().SetProjection(bson.M{"Director": 1})
	err := r.col.FindOne(ctx, bson.M{"Director.Name": name}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Director, nil
}
