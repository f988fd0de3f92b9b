package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "github.com/daniswhoiam/movie-api/docs" // swagger docs

	"github.com/daniswhoiam/movie-api/internal/auth"
	"github.com/daniswhoiam/movie-api/internal/config"
	"github.com/daniswhoiam/movie-api/internal/db"
	"github.com/daniswhoiam/movie-api/internal/handler"
	"github.com/daniswhoiam/movie-api/internal/logger"
	"github.com/daniswhoiam/movie-api/internal/repository"
	"github.com/daniswhoiam/movie-api/internal/repository/memrepo"
	"github.com/daniswhoiam/movie-api/internal/service"
)

// @title myFlix API
// @version 1.0
// @description Movie catalog with user accounts and favorite lists.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	help := flag.Bool("help", false, "print configuration variables and exit")
	flag.Parse()
	if *help {
		fmt.Println(config.Usage())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Log(ctx).Fatal(ctx, "failed to load config", zap.Error(err))
	}

	log, err := logger.NewLogger(logger.ParseEnvironment(cfg.LogMode), cfg.LogLevel)
	if err != nil {
		logger.Log(ctx).Fatal(ctx, "failed to build logger", zap.Error(err))
	}
	logger.SetGlobal(log)
	defer func() { _ = log.Sync() }()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal(ctx, "server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	if err != nil {
		return err
	}

	// storage
	var (
		users   service.UserStore
		movies  service.MovieStore
		pinger  handler.Pinger
		cleanup = func(context.Context) {}
	)
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn(ctx, "using in-memory storage, data is lost on exit")
		users = memrepo.NewUserStore()
		movies = memrepo.NewMovieStore(demoCatalog()...)
	default:
		m, err := db.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		if err := db.EnsureIndexes(ctx, m.DB); err != nil {
			_ = m.Close(context.Background())
			return err
		}
		users = repository.NewUserRepository(m.DB)
		movies = repository.NewMovieRepository(m.DB)
		pinger = m
		cleanup = func(ctx context.Context) {
			if err := m.Close(ctx); err != nil {
				log.Error(ctx, "mongo disconnect failed", zap.Error(err))
			}
		}
	}

	router := handler.NewRouter(handler.RouterDeps{
		Auth:           service.NewAuthService(users, tokens),
		Users:          service.NewUserService(users),
		Movies:         service.NewMovieService(movies),
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
		DB:             pinger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "HTTP listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		cleanup(context.Background())
		return err
	case <-ctx.Done():
	}

	log.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	cleanup(shutdownCtx)
	return err
}
