// Package services contains the application logic between the HTTP delivery
// layer and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"docledger/internal/application/command"
	"docledger/internal/application/mapper"
	"docledger/internal/common"
	"docledger/internal/domain/entities"
	"docledger/internal/domain/repositories"
	"docledger/internal/infrastructure/sessions"
)

// AuthService handles signup, login, logout and session checks.
type AuthService struct {
	users      repositories.UserRepository
	categories repositories.CategoryRepository
	sessions   *sessions.Manager
	logger     zerolog.Logger
}

func NewAuthService(
	users repositories.UserRepository,
	categories repositories.CategoryRepository,
	sessionManager *sessions.Manager,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		categories: categories,
		sessions:   sessionManager,
		logger:     logger,
	}
}

// Signup registers a new user and opens a session for it. The returned token
// is the session cookie value.
func (s *AuthService) Signup(ctx context.Context, cmd *command.SignupCommand) (*mapper.UserResult, string, error) {
	category, err := s.categories.FindByID(ctx, cmd.CategoryID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.NewValidationError("category_id", "unknown category")
		}
		return nil, "", err
	}

	if _, err := s.users.FindByUsername(ctx, cmd.Username); err == nil {
		return nil, "", fmt.Errorf("username: %w", common.ErrAlreadyExists)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, "", err
	}

	user := entities.NewUser(cmd.Name, cmd.Lastname, cmd.Username, cmd.Password, cmd.CategoryID)
	validated, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, "", err
	}
	// Hash after validation so the non-empty check ran against the plaintext.
	if err := validated.HashPassword(); err != nil {
		return nil, "", err
	}

	created, err := s.users.Create(ctx, validated)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, "", fmt.Errorf("username: %w", common.ErrAlreadyExists)
		}
		return nil, "", err
	}

	token, err := s.sessions.Open(ctx, created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("username", created.Username).Uint("user_id", created.ID).Msg("user registered")
	return mapper.NewUserResult(created, category.Name), token, nil
}

// Login verifies credentials and opens a session. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, cmd *command.LoginCommand) (*mapper.UserResult, string, error) {
	user, err := s.users.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthenticated
		}
		return nil, "", err
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, "", common.ErrUnauthenticated
	}

	token, err := s.sessions.Open(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	result, err := s.userResult(ctx, user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return result, token, nil
}

// Logout drops the session carried by the token. Tokens that no longer map to
// a session succeed silently.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Close(ctx, token)
}

// Check resolves the token to its user. It reports ErrUnauthenticated when
// the session is gone or the user row was deleted after login.
func (s *AuthService) Check(ctx context.Context, token string) (*mapper.UserResult, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, common.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, err
	}
	return s.userResult(ctx, user)
}

// ResolveToken returns the user id behind a session token; used by the auth
// middleware.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (uint, error) {
	return s.sessions.Resolve(ctx, token)
}

// SessionTTL is the lifetime the delivery layer should put on the session
// cookie.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

func (s *AuthService) userResult(ctx context.Context, user *entities.User) (*mapper.UserResult, error) {
	category, err := s.categories.FindByID(ctx, user.CategoryID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Orphaned category reference; serialize an empty label rather
			// than failing the whole response.
			return mapper.NewUserResult(user, ""), nil
		}
		return nil, err
	}
	return mapper.NewUserResult(user, category.Name), nil
}
