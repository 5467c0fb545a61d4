package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vaice/internal/auth"
	apperrors "vaice/internal/errors"
	"vaice/internal/model"
)

// MockHeroService is a mock implementation of service.HeroService.
type MockHeroService struct {
	mock.Mock
}

func (m *MockHeroService) GetProfile(ctx context.Context, id uint) (*model.Hero, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hero), args.Error(1)
}

func heroContext(t *testing.T, id uint, name string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/hero/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// What HeroAuth leaves in the context after verification.
	claims := &auth.HeroClaims{
		ID:               id,
		RegisteredClaims: jwt.RegisteredClaims{Subject: name},
	}
	c.Set("user", &jwt.Token{Claims: claims, Valid: true})
	return c, rec
}

func TestHeroHandler_Profile(t *testing.T) {
	age := 555
	svc := new(MockHeroService)
	svc.On("GetProfile", mock.Anything, uint(3)).Return(&model.Hero{
		ID:    3,
		Name:  "vice",
		Age:   &age,
		Power: "mind reading",
	}, nil)
	h := NewHeroHandler(svc)

	c, rec := heroContext(t, 3, "vice")
	assert.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var hero model.Hero
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hero))
	assert.Equal(t, uint(3), hero.ID)
	assert.Equal(t, "vice", hero.Name)
	assert.Equal(t, "mind reading", hero.Power)
	assert.Nil(t, hero.TeamID)
}

func TestHeroHandler_Profile_NotFound(t *testing.T) {
	svc := new(MockHeroService)
	svc.On("GetProfile", mock.Anything, uint(99)).Return(nil, apperrors.ErrHeroNotFound)
	h := NewHeroHandler(svc)

	c, _ := heroContext(t, 99, "ghost")
	err := h.Profile(c)

	assert.ErrorIs(t, err, apperrors.ErrHeroNotFound)
}

func TestHeroHandler_Profile_NoClaims(t *testing.T) {
	svc := new(MockHeroService)
	h := NewHeroHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/hero/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Profile(c)

	var he *echo.HTTPError
	assert.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	svc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}
