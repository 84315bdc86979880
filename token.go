package tokencache

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Token represents one issued credential.
type Token struct {
	Scheme    string // token type tag, e.g. "Bearer"
	Secret    string // opaque credential value
	Scope     string
	Subject   string // impersonated identity, optional
	ExpiresAt time.Time
}

// IsValid reports whether the token is usable at the supplied instant.
// A token expiring exactly at now is still valid; the fast path and the
// authoritative store share this one predicate.
func (t *Token) IsValid(now time.Time) bool {
	return t != nil && !t.ExpiresAt.Before(now)
}

// AsOAuth2 converts the token to its oauth2 representation.
func (t *Token) AsOAuth2() *oauth2.Token {
	return &oauth2.Token{TokenType: t.Scheme, AccessToken: t.Secret, Expiry: t.ExpiresAt}
}

// FromOAuth2 builds a Token from an oauth2 token issued for the given scope.
func FromOAuth2(token *oauth2.Token, scope string) *Token {
	scheme := token.TokenType
	if scheme == "" {
		scheme = "Bearer"
	}
	return &Token{Scheme: scheme, Secret: token.AccessToken, Scope: scope, ExpiresAt: token.Expiry}
}

// TokenFromJWT builds a bearer Token whose expiry and subject are taken from
// the JWT claims. The token is parsed without signature verification; trust
// in its origin stays with the caller.
func TokenFromJWT(raw string, scope string) (*Token, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("failed to get expiration time: %w", err)
	}
	if expiry == nil {
		return nil, fmt.Errorf("token has no exp claim")
	}
	ret := &Token{Scheme: "Bearer", Secret: raw, Scope: scope, ExpiresAt: expiry.Time}
	if subject, err := claims.GetSubject(); err == nil {
		ret.Subject = subject
	}
	return ret, nil
}
