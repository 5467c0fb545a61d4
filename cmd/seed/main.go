// Command seed bootstraps the first admin user and the demo hero. Admins
// are never created through the API, so a fresh deployment runs this once
// before anything can log in.
package main

import (
	"context"
	"errors"
	"os"

	"gorm.io/gorm"

	"vaice/internal/auth"
	"vaice/internal/config"
	"vaice/internal/db"
	"vaice/internal/model"
	"vaice/internal/repository"
	"vaice/pkg/logger"
)

func main() {
	ctx := context.Background()
	log := logger.Init(logger.Options{Pretty: true})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	users := repository.NewUserRepository(gormDB)
	heroes := repository.NewHeroRepository(gormDB)

	adminName := getenv("SEED_ADMIN_NAME", "admin")
	adminPassword := getenv("SEED_ADMIN_PASSWORD", "admin")

	if err := seedAdmin(ctx, users, hasher, adminName, adminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	log.Info().Str("name", adminName).Msg("admin user ready")

	// Demo hero used by the API examples.
	age := 555
	if err := seedHero(ctx, heroes, hasher, &model.Hero{
		Name:  "vice",
		Age:   &age,
		Power: "mind reading",
	}, "vice"); err != nil {
		log.Fatal().Err(err).Msg("seed hero")
	}
	log.Info().Str("name", "vice").Msg("demo hero ready")
}

func seedAdmin(ctx context.Context, users repository.UserRepository, hasher *auth.Hasher, name, password string) error {
	_, err := users.FindByName(ctx, name)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	return users.Create(ctx, &model.User{
		Name:         name,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
}

func seedHero(ctx context.Context, heroes repository.HeroRepository, hasher *auth.Hasher, hero *model.Hero, password string) error {
	_, err := heroes.FindByName(ctx, hero.Name)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	hero.PasswordHash = hash
	return heroes.Create(ctx, hero)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
