package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vaice/internal/auth"
	"vaice/internal/cache"
	apperrors "vaice/internal/errors"
	"vaice/internal/metrics"
	"vaice/internal/model"
	"vaice/internal/repository"
)

// AdminService exposes the role-gated management operations.
type AdminService interface {
	CreateUser(ctx context.Context, name, password string) (*model.User, error)
	CreateTeam(ctx context.Context, name string) (*model.Team, error)
	CreateHero(ctx context.Context, name string, age *int, power, password string) (*model.Hero, error)
	ListHeroes(ctx context.Context) ([]model.Hero, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	ListHeroesWithoutTeam(ctx context.Context) ([]model.Hero, error)
	UpdateHeroTeam(ctx context.Context, heroID, teamID uint) (*model.Hero, error)
}

type adminService struct {
	users  repository.UserRepository
	teams  repository.TeamRepository
	heroes repository.HeroRepository
	hasher *auth.Hasher
	cache  *cache.Client
}

// NewAdminService builds an AdminService over the three repositories.
func NewAdminService(
	users repository.UserRepository,
	teams repository.TeamRepository,
	heroes repository.HeroRepository,
	hasher *auth.Hasher,
	cache *cache.Client,
) AdminService {
	return &adminService{
		users:  users,
		teams:  teams,
		heroes: heroes,
		hasher: hasher,
		cache:  cache,
	}
}

// CreateUser creates a user with the fixed "user" role and a hashed
// password. Admins are only minted by the seed command.
func (s *adminService) CreateUser(ctx context.Context, name, password string) (*model.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *adminService) CreateTeam(ctx context.Context, name string) (*model.Team, error) {
	team := &model.Team{Name: name}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	metrics.TeamsCreatedTotal.Inc()
	return team, nil
}

// CreateHero rejects duplicate names before inserting anything. The check
// and the insert share one transaction so a concurrent create of the same
// name cannot slip between them.
func (s *adminService) CreateHero(ctx context.Context, name string, age *int, power, password string) (*model.Hero, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	hero := &model.Hero{
		Name:         name,
		Age:          age,
		Power:        power,
		PasswordHash: hash,
	}

	err = s.heroes.WithTransaction(ctx, func(ctx context.Context, repo repository.HeroRepository) error {
		_, err := repo.FindByName(ctx, name)
		if err == nil {
			return apperrors.ErrHeroExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check hero existence: %w", err)
		}
		return repo.Create(ctx, hero)
	})
	if err != nil {
		return nil, err
	}

	metrics.HeroesCreatedTotal.Inc()
	return hero, nil
}

func (s *adminService) ListHeroes(ctx context.Context) ([]model.Hero, error) {
	return s.heroes.List(ctx)
}

func (s *adminService) ListTeams(ctx context.Context) ([]model.Team, error) {
	return s.teams.List(ctx)
}

func (s *adminService) ListHeroesWithoutTeam(ctx context.Context) ([]model.Hero, error) {
	return s.heroes.ListWithoutTeam(ctx)
}

// UpdateHeroTeam reassigns a hero to a team. The team must exist; nothing
// in the system ever deletes teams, so checking before the hero
// transaction is safe.
func (s *adminService) UpdateHeroTeam(ctx context.Context, heroID, teamID uint) (*model.Hero, error) {
	if _, err := s.teams.FindByID(ctx, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("find team: %w", err)
	}

	var hero *model.Hero
	err := s.heroes.WithTransaction(ctx, func(ctx context.Context, repo repository.HeroRepository) error {
		found, err := repo.FindByID(ctx, heroID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrHeroNotFound
			}
			return fmt.Errorf("find hero: %w", err)
		}
		if err := repo.UpdateTeam(ctx, heroID, teamID); err != nil {
			return fmt.Errorf("update hero team: %w", err)
		}
		found.TeamID = &teamID
		hero = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Drop any cached copy so the hero sees the new team immediately.
	_ = s.cache.Delete(ctx, heroCacheKey(heroID))

	return hero, nil
}
