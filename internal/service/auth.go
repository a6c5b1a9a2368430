package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobvault/vacancy-service/internal/apperr"
	"github.com/jobvault/vacancy-service/internal/models"
	"github.com/jobvault/vacancy-service/internal/repository"
)

// LoginResponse is the payload returned on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthService handles registration, login and the token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	// Authenticate validates a presented token through every gate
	// (signature, expiry, session cache) and returns the principal.
	Authenticate(ctx context.Context, token string) (string, error)
	// Logout removes the session entry for the token's principal. An
	// expired token is treated as already logged out and succeeds.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	sessions SessionStore
	log      *slog.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService, sessions SessionStore, log *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		sessions: sessions,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	// Check-then-insert; concurrent duplicate registrations can race past
	// this check, matching the upstream behavior.
	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered", "username", username)
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// Overwrites any previous entry: logging in twice leaves only the
	// newest token honored.
	if err := s.sessions.Put(ctx, user.Username, token, s.tokens.Expiry()); err != nil {
		return nil, err
	}

	s.log.Info("user logged in", "username", username)
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokens.Expiry().Seconds()),
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return "", err
	}

	if s.sessions.Available() {
		stored, err := s.sessions.Get(ctx, claims.Subject)
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.ErrTokenRevoked
		}
		if err != nil {
			return "", err
		}
		if stored != token {
			return "", apperr.ErrTokenRevoked
		}
	}

	return claims.Subject, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		// An expired token's session entry has already lapsed; report
		// success rather than bouncing the client.
		if errors.Is(err, apperr.ErrTokenExpired) {
			return nil
		}
		return err
	}

	if _, err := s.sessions.Delete(ctx, claims.Subject); err != nil {
		return err
	}

	s.log.Info("user logged out", "username", claims.Subject)
	return nil
}
