package mock

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// createJWT creates a signed access token for clientID with the given scope and expiry
func (m *Issuer) createJWT(clientID, scope string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   m.URL,
		"sub":   "test_subject",
		"aud":   clientID,
		"scope": scope,
		"exp":   now.Add(expiry).Unix(),
		"iat":   now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(m.privateKey)
}
