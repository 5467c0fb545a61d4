package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"vaice/internal/cache"
	apperrors "vaice/internal/errors"
	"vaice/internal/model"
	"vaice/internal/repository"
)

const heroCacheTTL = 5 * time.Minute

func heroCacheKey(id uint) string {
	return fmt.Sprintf("hero:%d", id)
}

// HeroService exposes the operations available to an authenticated hero.
type HeroService interface {
	// GetProfile returns the hero record matching the token's embedded id.
	GetProfile(ctx context.Context, id uint) (*model.Hero, error)
}

type heroService struct {
	heroes repository.HeroRepository
	cache  *cache.Client
}

// NewHeroService builds a HeroService with repository and cache.
func NewHeroService(heroes repository.HeroRepository, cache *cache.Client) HeroService {
	return &heroService{heroes: heroes, cache: cache}
}

func (s *heroService) GetProfile(ctx context.Context, id uint) (*model.Hero, error) {
	if data, _ := s.cache.Get(ctx, heroCacheKey(id)); data != nil {
		var cached model.Hero
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	hero, err := s.heroes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHeroNotFound
		}
		return nil, fmt.Errorf("find hero: %w", err)
	}

	if payload, err := json.Marshal(hero); err == nil {
		_ = s.cache.Set(ctx, heroCacheKey(id), payload, heroCacheTTL)
	}
	return hero, nil
}
