package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vaice/internal/service"
)

// AdminHandler handles the admin-gated management endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateUserRequest is the payload for creating an administrative user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateHeroRequest is the payload for creating a hero.
type CreateHeroRequest struct {
	Name     string `json:"name" validate:"required"`
	Age      *int   `json:"age"`
	Power    string `json:"power" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateUser godoc
// @Summary Create a user with the "user" role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/user [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.adminService.CreateUser(c.Request().Context(), req.Name, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User created successfully",
	})
}

// CreateTeam godoc
// @Summary Create a team
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTeamRequest true "Team data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/team [post]
func (h *AdminHandler) CreateTeam(c echo.Context) error {
	var req CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.adminService.CreateTeam(c.Request().Context(), req.Name); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Team created successfully",
	})
}

// CreateHero godoc
// @Summary Create a hero
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHeroRequest true "Hero data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/hero [post]
func (h *AdminHandler) CreateHero(c echo.Context) error {
	var req CreateHeroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hero, err := h.adminService.CreateHero(c.Request().Context(), req.Name, req.Age, req.Power, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Hero created successfully",
		"hero_id": hero.ID,
	})
}

// ListHeroes godoc
// @Summary List all heroes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Hero
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/heroes [get]
func (h *AdminHandler) ListHeroes(c echo.Context) error {
	heroes, err := h.adminService.ListHeroes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, heroes)
}

// ListTeams godoc
// @Summary List all teams
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Team
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/teams [get]
func (h *AdminHandler) ListTeams(c echo.Context) error {
	teams, err := h.adminService.ListTeams(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

// ListHeroesWithoutTeam godoc
// @Summary List heroes with no team assigned
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Hero
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/heroes/no-team [get]
func (h *AdminHandler) ListHeroesWithoutTeam(c echo.Context) error {
	heroes, err := h.adminService.ListHeroesWithoutTeam(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, heroes)
}

// UpdateHeroTeam godoc
// @Summary Reassign a hero to a team
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param hero_id path int true "Hero ID"
// @Param team_id query int true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/hero/{hero_id} [put]
func (h *AdminHandler) UpdateHeroTeam(c echo.Context) error {
	heroID, err := strconv.ParseUint(c.Param("hero_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hero id")
	}
	teamID, err := strconv.ParseUint(c.QueryParam("team_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid team id")
	}

	hero, err := h.adminService.UpdateHeroTeam(c.Request().Context(), uint(heroID), uint(teamID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Hero team updated successfully",
		"hero_id": hero.ID,
	})
}
