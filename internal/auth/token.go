package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vaice/internal/model"
)

// TokenTTL is the fixed validity window of every issued token. There is
// no refresh; an expired token requires a new login.
const TokenTTL = 20 * time.Minute

// UserClaims is the claim schema for user-kind tokens.
type UserClaims struct {
	ID   uint       `json:"id"`
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// HeroClaims is the claim schema for hero-kind tokens. It carries no role;
// hero tokens only ever grant access to the hero's own record.
type HeroClaims struct {
	ID uint `json:"id"`
	jwt.RegisteredClaims
}

// UserTokens issues HS256-signed tokens for user principals. It is one of
// two independent issuers; the hero issuer signs with its own secret, so a
// token of one kind never validates for the other's endpoints.
type UserTokens struct {
	secret []byte
}

// NewUserTokens creates the user-kind issuer.
func NewUserTokens(secret string) *UserTokens {
	return &UserTokens{secret: []byte(secret)}
}

// Issue signs a token embedding the user's name, id and role.
func (t *UserTokens) Issue(name string, id uint, role model.Role) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		ID:   id,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Secret exposes the signing key for wiring the verification middleware.
func (t *UserTokens) Secret() []byte { return t.secret }

// HeroTokens issues HS256-signed tokens for hero principals.
type HeroTokens struct {
	secret []byte
}

// NewHeroTokens creates the hero-kind issuer.
func NewHeroTokens(secret string) *HeroTokens {
	return &HeroTokens{secret: []byte(secret)}
}

// Issue signs a token embedding the hero's name and id.
func (t *HeroTokens) Issue(name string, id uint) (string, error) {
	now := time.Now()
	claims := &HeroClaims{
		ID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Secret exposes the signing key for wiring the verification middleware.
func (t *HeroTokens) Secret() []byte { return t.secret }
