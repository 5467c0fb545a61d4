package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"vaice/internal/config"
	"vaice/internal/handler"
	"vaice/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	heroHandler *handler.HeroHandler,
) {
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Recover())
	e.Use(echoprometheus.NewMiddleware("vaice"))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Token endpoints take form-encoded credentials, no auth required.
	e.POST("/auth_user/token", authHandler.UserToken)
	e.POST("/auth_hero/token", authHandler.HeroToken)

	// Admin endpoints require a user-kind token with the admin role.
	admin := e.Group("/admin",
		middleware.UserAuth([]byte(cfg.UserTokenSecret)),
		middleware.RequireAdmin,
	)
	admin.POST("/user", adminHandler.CreateUser)
	admin.POST("/team", adminHandler.CreateTeam)
	admin.POST("/hero", adminHandler.CreateHero)
	admin.GET("/heroes", adminHandler.ListHeroes)
	admin.GET("/teams", adminHandler.ListTeams)
	admin.GET("/heroes/no-team", adminHandler.ListHeroesWithoutTeam)
	admin.PUT("/hero/:hero_id", adminHandler.UpdateHeroTeam)

	// Hero endpoints require a hero-kind token.
	hero := e.Group("/hero", middleware.HeroAuth([]byte(cfg.HeroTokenSecret)))
	hero.GET("/", heroHandler.Profile)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
