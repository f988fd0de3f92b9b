package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/daniswhoiam/movie-api/internal/config"
	"github.com/daniswhoiam/movie-api/internal/logger"
)

const (
	UsersCollection  = "users"
	MoviesCollection = "movies"

	UsernameIndex = "username_unique"
	EmailIndex    = "email_unique"
)

// Mongo holds the client and the selected database for the process lifetime.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials MongoDB and pings the primary within cfg.MongoConnectTimeout.
func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	log := logger.Log(ctx)

	ctx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info(ctx, "[mongo] connected", zap.String("db", cfg.MongoDB))
	return &Mongo{Client: client, DB: client.Database(cfg.MongoDB)}, nil
}

// EnsureIndexes creates the unique indexes that back username and email
// uniqueness. Safe to call on every start.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "Username", Value: 1}},
			Options: options.Index().SetName(UsernameIndex).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "Email", Value: 1}},
			Options: options.Index().SetName(EmailIndex).SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	_, err = database.Collection(MoviesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "Title", Value: 1}}},
		{Keys: bson.D{{Key: "Genre.Name", Value: 1}}},
		{Keys: bson.D{{Key: "Director.Name", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create movie indexes: %w", err)
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
