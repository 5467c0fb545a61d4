package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vaice/internal/model"
	"vaice/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTeamRepository is a mock implementation of TeamRepository.
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *model.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id uint) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]model.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

// MockHeroRepository is a mock implementation of HeroRepository.
// WithTransaction runs fn against the mock itself, so expectations set on
// it cover the transactional path too.
type MockHeroRepository struct {
	mock.Mock
}

func (m *MockHeroRepository) Create(ctx context.Context, hero *model.Hero) error {
	args := m.Called(ctx, hero)
	return args.Error(0)
}

func (m *MockHeroRepository) FindByID(ctx context.Context, id uint) (*model.Hero, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hero), args.Error(1)
}

func (m *MockHeroRepository) FindByName(ctx context.Context, name string) (*model.Hero, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hero), args.Error(1)
}

func (m *MockHeroRepository) List(ctx context.Context) ([]model.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hero), args.Error(1)
}

func (m *MockHeroRepository) ListWithoutTeam(ctx context.Context) ([]model.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hero), args.Error(1)
}

func (m *MockHeroRepository) UpdateTeam(ctx context.Context, heroID, teamID uint) error {
	args := m.Called(ctx, heroID, teamID)
	return args.Error(0)
}

func (m *MockHeroRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.HeroRepository) error) error {
	return fn(ctx, m)
}
