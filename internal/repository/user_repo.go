package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/daniswhoiam/movie-api/internal/db"
	"github.com/daniswhoiam/movie-api/internal/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{col: database.Collection(db.UsersCollection)}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"Username": username})
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert stores u and sets u.ID. A unique index violation comes back as
// *DuplicateKeyError.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	if u.FavoriteMovies == nil {
		u.FavoriteMovies = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return classifyWriteError(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return nil
}

// Update applies a partial $set and returns the updated document.
func (r *UserRepository) Update(ctx context.Context, username string, upd models.UserUpdate) (*models.User, error) {
	if upd.Empty() {
		u, err := r.FindByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrNotFound
		}
		return u, nil
	}

	set := bson.M{}
	if upd.Username != nil {
		set["Username"] = *upd.Username
	}
	if upd.Password != nil {
		set["Password"] = *upd.Password
	}
	if upd.Email != nil {
		set["Email"] = *upd.Email
	}
	if upd.Birth != nil {
		set["Birth"] = *upd.Birth
	}
	u, err := r.findOneAndUpdate(ctx, username, bson.M{"$set": set})
	if err != nil {
		return nil, classifyWriteError(err)
	}
	return u, nil
}

// AddFavorite adds movieID to the favorites set. Adding an id twice is a no-op.
func (r *UserRepository) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{"$addToSet": bson.M{"FavoriteMovies": movieID}})
}

// RemoveFavorite pulls movieID from the favorites set. Removing an absent id
// is a no-op.
func (r *UserRepository) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{"$pull": bson.M{"FavoriteMovies": movieID}})
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, username string, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"Username": username}, update, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) DeleteByUsername(ctx context.Context, username string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"Username": username})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
