package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vaice/internal/middleware"
	"vaice/internal/service"
)

// HeroHandler handles the hero-token endpoints.
type HeroHandler struct {
	heroService service.HeroService
}

// NewHeroHandler creates a new hero handler.
func NewHeroHandler(heroService service.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

// Profile godoc
// @Summary Get the authenticated hero's own record
// @Tags hero
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Hero
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hero/ [get]
func (h *HeroHandler) Profile(c echo.Context) error {
	claims, ok := middleware.HeroClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	hero, err := h.heroService.GetProfile(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hero)
}
