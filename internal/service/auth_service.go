package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/daniswhoiam/movie-api/internal/auth"
	"github.com/daniswhoiam/movie-api/internal/logger"
	"github.com/daniswhoiam/movie-api/internal/models"
)

type AuthService struct {
	users  UserStore
	tokens *auth.Tokens
}

type RegisterUserData struct {
	Username string
	Password string
	Email    string
	Birth    *time.Time
}

func NewAuthService(users UserStore, tokens *auth.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// ================== REGISTER & LOGIN ==================

// Register hashes the password and inserts the user in one write. Uniqueness
// is enforced by the store, so a taken username or email comes back as
// ErrUsernameTaken / ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.User, error) {
	hash, err := hashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:       data.Username,
		Password:       hash,
		Email:          data.Email,
		Birth:          data.Birth,
		FavoriteMovies: []primitive.ObjectID{},
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, wrapUserErr("insert user", err)
	}

	logger.Log(ctx).Info(ctx, "user registered", zap.String("username", u.Username))
	return u, nil
}

// Authenticate checks a username/password pair. Rejections are *LoginError;
// any other error is a store failure.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	log := logger.Log(ctx).With(zap.String("username", username))

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		log.Info(ctx, "login rejected", zap.String("reason", string(ReasonNoSuchUser)))
		return nil, &LoginError{
			Reason:  ReasonNoSuchUser,
			Field:   "Username",
			Message: "There is no user with this username. Please enter a correct username.",
		}
	}

	if !auth.CheckPassword(password, u.Password) {
		log.Info(ctx, "login rejected", zap.String("reason", string(ReasonWrongPassword)))
		return nil, &LoginError{
			Reason:  ReasonWrongPassword,
			Field:   "Password",
			Message: "The password you entered is incorrect. Please try again.",
		}
	}
	return u, nil
}

// Login authenticates and issues a bearer token for the user.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, expiresAt, err := s.tokens.Issue(u.ID.Hex(), u.Username)
	if err != nil {
		return "", nil, err
	}

	logger.Log(ctx).Info(ctx, "token issued",
		zap.String("username", u.Username),
		zap.Time("expires_at", expiresAt))
	return token, u, nil
}

// Identify resolves a bearer token to its user. Bad, expired or orphaned
// tokens wrap ErrUnauthenticated; store failures are returned as is.
func (s *AuthService) Identify(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrUnauthenticated)
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find token subject: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user no longer exists", ErrUnauthenticated)
	}
	return u, nil
}
