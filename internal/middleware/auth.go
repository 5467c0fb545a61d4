package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"vaice/internal/auth"
)

// authError collapses every verification failure (missing header, bad
// signature, malformed payload, expiry) into one undifferentiated 401.
func authError(c echo.Context, err error) error {
	return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
}

// UserAuth verifies user-kind bearer tokens and injects the typed claims
// into the request context. Tokens signed for the hero kind fail here
// because the secrets differ.
func UserAuth(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: secret,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.UserClaims)
		},
		ErrorHandler: authError,
	})
}

// HeroAuth verifies hero-kind bearer tokens.
func HeroAuth(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: secret,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.HeroClaims)
		},
		ErrorHandler: authError,
	})
}

// UserClaimsFrom extracts the verified user claims set by UserAuth.
func UserClaimsFrom(c echo.Context) (*auth.UserClaims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.UserClaims)
	return claims, ok
}

// HeroClaimsFrom extracts the verified hero claims set by HeroAuth.
func HeroClaimsFrom(c echo.Context) (*auth.HeroClaims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.HeroClaims)
	return claims, ok
}
