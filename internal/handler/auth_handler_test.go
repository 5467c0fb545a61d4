package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "vaice/internal/errors"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) LoginUser(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) LoginHero(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

func postForm(t *testing.T, h echo.HandlerFunc, form url.Values) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, h(c)
}

func TestAuthHandler_UserToken(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("LoginUser", mock.Anything, "alice", "secret").Return("signed-token", nil)
	h := NewAuthHandler(svc)

	rec, err := postForm(t, h.UserToken, url.Values{
		"username": {"alice"},
		"password": {"secret"},
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestAuthHandler_UserToken_BadCredentials(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("LoginUser", mock.Anything, "alice", "wrong").Return("", apperrors.ErrInvalidCredentials)
	h := NewAuthHandler(svc)

	_, err := postForm(t, h.UserToken, url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthHandler_UserToken_MissingFields(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)

	_, err := postForm(t, h.UserToken, url.Values{
		"username": {"alice"},
	})

	var he *echo.HTTPError
	assert.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	svc.AssertNotCalled(t, "LoginUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_HeroToken(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("LoginHero", mock.Anything, "vice", "vice").Return("hero-token", nil)
	h := NewAuthHandler(svc)

	rec, err := postForm(t, h.HeroToken, url.Values{
		"username": {"vice"},
		"password": {"vice"},
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hero-token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}
