package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by the session cookie. The subject is
// the username.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Username returns the subject of the claims
func (c *SessionClaims) Username() string {
	return c.Subject
}
