package service

import (
	"context"
	"fmt"

	"vaice/internal/auth"
	apperrors "vaice/internal/errors"
	"vaice/internal/metrics"
	"vaice/internal/repository"
)

// AuthService authenticates both principal kinds and issues their tokens.
type AuthService interface {
	// LoginUser verifies a user's credentials and returns a user-kind token.
	LoginUser(ctx context.Context, username, password string) (string, error)
	// LoginHero verifies a hero's credentials and returns a hero-kind token.
	LoginHero(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users      repository.UserRepository
	heroes     repository.HeroRepository
	hasher     *auth.Hasher
	userTokens *auth.UserTokens
	heroTokens *auth.HeroTokens
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	heroes repository.HeroRepository,
	hasher *auth.Hasher,
	userTokens *auth.UserTokens,
	heroTokens *auth.HeroTokens,
) AuthService {
	return &authService{
		users:      users,
		heroes:     heroes,
		hasher:     hasher,
		userTokens: userTokens,
		heroTokens: heroTokens,
	}
}

func (s *authService) LoginUser(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByName(ctx, username)
	if err != nil {
		// Unknown name and wrong password produce the same error.
		metrics.LoginAttemptsTotal.WithLabelValues("user", "failure").Inc()
		return "", apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("user", "failure").Inc()
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.userTokens.Issue(user.Name, user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("issue user token: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("user", "success").Inc()
	return token, nil
}

func (s *authService) LoginHero(ctx context.Context, username, password string) (string, error) {
	hero, err := s.heroes.FindByName(ctx, username)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("hero", "failure").Inc()
		return "", apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, hero.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("hero", "failure").Inc()
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.heroTokens.Issue(hero.Name, hero.ID)
	if err != nil {
		return "", fmt.Errorf("issue hero token: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("hero", "success").Inc()
	return token, nil
}
