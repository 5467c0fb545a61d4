package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vaice/internal/model"
)

// RequireAdmin enforces the admin role on top of UserAuth. A valid token
// with any other role is an authorization failure, distinct from the 401
// returned for unverifiable tokens.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := UserClaimsFrom(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}
