package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/daniswhoiam/movie-api/internal/logger"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"

	// DefaultJWTSecret is the well-known development key. Production refuses it.
	DefaultJWTSecret = "your_jwt_secret"
)

var (
	ErrEmptySecret    = errors.New("JWT_SECRET must not be empty")
	ErrDefaultSecret  = errors.New("JWT_SECRET must be set in production")
	ErrBadStorage     = errors.New("STORAGE must be mongo or memory")
	ErrBadTokenTTL    = errors.New("JWT_TTL must be positive")
	ErrEmptyMongoURI  = errors.New("MONGO_URI must not be empty")
	ErrEmptyMongoName = errors.New("MONGO_DB must not be empty")
)

type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:1234,http://localhost:4200"`

	Storage             string        `env:"STORAGE" env-default:"mongo"`
	MongoURI            string        `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	MongoDB             string        `env:"MONGO_DB" env-default:"myFlixDB"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`

	JWTSecret string        `env:"JWT_SECRET" env-default:"your_jwt_secret"`
	JWTTTL    time.Duration `env:"JWT_TTL" env-default:"168h"`
	JWTIssuer string        `env:"JWT_ISSUER" env-default:"myflix"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	LogMode  string `env:"LOG_MODE" env-default:"development"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	if err := godotenv.Load(); err != nil {
		log.Debug(ctx, "[config] no .env file, using process environment")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == DefaultJWTSecret {
		log.Warn(ctx, "[config] JWT_SECRET is the default development key, set it before exposing the API")
	}

	log.Info(ctx, "[config] loaded",
		zap.String("http_port", cfg.HTTPPort),
		zap.String("storage", cfg.Storage),
		zap.String("mongo_db", cfg.MongoDB),
		zap.Duration("jwt_ttl", cfg.JWTTTL),
		zap.Strings("allowed_origins", cfg.AllowedOrigins),
	)
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrEmptySecret
	}
	if c.JWTSecret == DefaultJWTSecret && logger.ParseEnvironment(c.LogMode) == logger.Production {
		return ErrDefaultSecret
	}
	if c.JWTTTL <= 0 {
		return ErrBadTokenTTL
	}
	switch c.Storage {
	case StorageMemory:
	case StorageMongo:
		if c.MongoURI == "" {
			return ErrEmptyMongoURI
		}
		if c.MongoDB == "" {
			return ErrEmptyMongoName
		}
	default:
		return fmt.Errorf("%w: got %q", ErrBadStorage, c.Storage)
	}
	return nil
}

// Usage describes every supported variable. Printed by `api -help`.
func Usage() string {
	var cfg Config
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return err.Error()
	}
	return desc
}
