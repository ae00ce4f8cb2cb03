package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin         = "admin"
	RoleAuthenticated = "authenticated"
)

// Claims are the access token claims issued by the identity provider. The
// user id is the token subject.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}
