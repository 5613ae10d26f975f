package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/chou-ng-coder/ocr-website/internal/auth"
	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/repository"
)

// uniqueViolation is the Postgres error code raised when an insert collides
// with a unique index; the signup pre-check leaves a race window.
const uniqueViolation = "23505"

// AuthService covers account registration and bearer-token authentication.
type AuthService interface {
	// Signup registers a new account with a hashed password.
	Signup(ctx context.Context, username, password string) (*model.User, error)

	// Login verifies credentials and issues a signed bearer token. Unknown
	// username and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, error)

	// ResolveToken maps a bearer token back to its account.
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &model.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *authService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	username, err := s.tokens.Subject(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
