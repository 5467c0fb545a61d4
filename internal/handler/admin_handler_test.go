package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "vaice/internal/errors"
	"vaice/internal/model"
)

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) CreateUser(ctx context.Context, name, password string) (*model.User, error) {
	args := m.Called(ctx, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAdminService) CreateTeam(ctx context.Context, name string) (*model.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockAdminService) CreateHero(ctx context.Context, name string, age *int, power, password string) (*model.Hero, error) {
	args := m.Called(ctx, name, age, power, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hero), args.Error(1)
}

func (m *MockAdminService) ListHeroes(ctx context.Context) ([]model.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hero), args.Error(1)
}

func (m *MockAdminService) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *MockAdminService) ListHeroesWithoutTeam(ctx context.Context) ([]model.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hero), args.Error(1)
}

func (m *MockAdminService) UpdateHeroTeam(ctx context.Context, heroID, teamID uint) (*model.Hero, error) {
	args := m.Called(ctx, heroID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hero), args.Error(1)
}

func jsonRequest(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdminHandler_CreateHero(t *testing.T) {
	age := 555
	svc := new(MockAdminService)
	svc.On("CreateHero", mock.Anything, "vice", &age, "mind reading", "vice").
		Return(&model.Hero{ID: 3, Name: "vice", Age: &age, Power: "mind reading"}, nil)
	h := NewAdminHandler(svc)

	c, rec := jsonRequest(t, http.MethodPost, "/admin/hero",
		`{"name":"vice","age":555,"power":"mind reading","password":"vice"}`)

	assert.NoError(t, h.CreateHero(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hero created successfully", resp["message"])
	assert.Equal(t, float64(3), resp["hero_id"])
}

func TestAdminHandler_CreateHero_Duplicate(t *testing.T) {
	age := 555
	svc := new(MockAdminService)
	svc.On("CreateHero", mock.Anything, "vice", &age, "mind reading", "vice").
		Return(nil, apperrors.ErrHeroExists)
	h := NewAdminHandler(svc)

	c, _ := jsonRequest(t, http.MethodPost, "/admin/hero",
		`{"name":"vice","age":555,"power":"mind reading","password":"vice"}`)

	assert.ErrorIs(t, h.CreateHero(c), apperrors.ErrHeroExists)
}

func TestAdminHandler_UpdateHeroTeam(t *testing.T) {
	teamID := uint(2)
	svc := new(MockAdminService)
	svc.On("UpdateHeroTeam", mock.Anything, uint(3), uint(2)).
		Return(&model.Hero{ID: 3, Name: "vice", TeamID: &teamID}, nil)
	h := NewAdminHandler(svc)

	c, rec := jsonRequest(t, http.MethodPut, "/admin/hero/3?team_id=2", "")
	c.SetParamNames("hero_id")
	c.SetParamValues("3")

	assert.NoError(t, h.UpdateHeroTeam(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hero team updated successfully", resp["message"])
}

func TestAdminHandler_UpdateHeroTeam_BadParams(t *testing.T) {
	svc := new(MockAdminService)
	h := NewAdminHandler(svc)

	c, _ := jsonRequest(t, http.MethodPut, "/admin/hero/abc?team_id=2", "")
	c.SetParamNames("hero_id")
	c.SetParamValues("abc")

	err := h.UpdateHeroTeam(c)
	var he *echo.HTTPError
	assert.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)

	// Missing team_id is also a client error.
	c, _ = jsonRequest(t, http.MethodPut, "/admin/hero/3", "")
	c.SetParamNames("hero_id")
	c.SetParamValues("3")

	err = h.UpdateHeroTeam(c)
	assert.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	svc.AssertNotCalled(t, "UpdateHeroTeam", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminHandler_ListHeroes_Empty(t *testing.T) {
	svc := new(MockAdminService)
	svc.On("ListHeroes", mock.Anything).Return([]model.Hero{}, nil)
	h := NewAdminHandler(svc)

	c, rec := jsonRequest(t, http.MethodGet, "/admin/heroes", "")

	assert.NoError(t, h.ListHeroes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
