package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	_ "vaice/docs" // swagger docs

	"vaice/internal/auth"
	"vaice/internal/cache"
	"vaice/internal/config"
	"vaice/internal/db"
	"vaice/internal/handler"
	"vaice/internal/repository"
	"vaice/internal/router"
	"vaice/internal/service"
	"vaice/pkg/logger"
)

// @title VaiCe Heroes API
// @version 1.0.0
// @description User and hero authentication with role-gated team management.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Tables are created at startup if absent; there is no separate
	// migration tooling.
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	userRepo := repository.NewUserRepository(gormDB)
	teamRepo := repository.NewTeamRepository(gormDB)
	heroRepo := repository.NewHeroRepository(gormDB)

	hasher := auth.NewHasher(cfg.BcryptCost)
	userTokens := auth.NewUserTokens(cfg.UserTokenSecret)
	heroTokens := auth.NewHeroTokens(cfg.HeroTokenSecret)

	authService := service.NewAuthService(userRepo, heroRepo, hasher, userTokens, heroTokens)
	adminService := service.NewAdminService(userRepo, teamRepo, heroRepo, hasher, cacheClient)
	heroService := service.NewHeroService(heroRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	heroHandler := handler.NewHeroHandler(heroService)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = router.NewHTTPErrorHandler(log)

	router.Register(e, cfg, authHandler, adminHandler, heroHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
