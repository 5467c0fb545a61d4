package repository

import (
	"context"

	"gorm.io/gorm"

	"vaice/internal/model"
)

// HeroRepository defines hero persistence operations.
type HeroRepository interface {
	Create(ctx context.Context, hero *model.Hero) error
	FindByID(ctx context.Context, id uint) (*model.Hero, error)
	FindByName(ctx context.Context, name string) (*model.Hero, error)
	List(ctx context.Context) ([]model.Hero, error)
	ListWithoutTeam(ctx context.Context) ([]model.Hero, error)
	UpdateTeam(ctx context.Context, heroID, teamID uint) error
	// WithTransaction runs fn against a transaction-scoped repository;
	// any error rolls the whole transaction back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo HeroRepository) error) error
}

type heroRepository struct {
	db *gorm.DB
}

// NewHeroRepository builds a GORM-backed repository.
func NewHeroRepository(db *gorm.DB) HeroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Create(ctx context.Context, hero *model.Hero) error {
	return r.db.WithContext(ctx).Create(hero).Error
}

func (r *heroRepository) FindByID(ctx context.Context, id uint) (*model.Hero, error) {
	var hero model.Hero
	if err := r.db.WithContext(ctx).First(&hero, id).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) FindByName(ctx context.Context, name string) (*model.Hero, error) {
	var hero model.Hero
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&hero).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) List(ctx context.Context) ([]model.Hero, error) {
	var heroes []model.Hero
	if err := r.db.WithContext(ctx).Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) ListWithoutTeam(ctx context.Context) ([]model.Hero, error) {
	var heroes []model.Hero
	if err := r.db.WithContext(ctx).Where("team_id IS NULL").Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) UpdateTeam(ctx context.Context, heroID, teamID uint) error {
	return r.db.WithContext(ctx).Model(&model.Hero{}).
		Where("id = ?", heroID).
		Update("team_id", teamID).Error
}

func (r *heroRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo HeroRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &heroRepository{db: tx})
	})
}
