package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims represents the claims in a JWT token
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// Session is the authenticated identity attached to a request. The zero
// value means "not logged in"; every service call that needs an identity
// receives it explicitly rather than reading ambient state.
type Session struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// Authenticated reports whether the session carries a user.
func (s Session) Authenticated() bool {
	return s.UserID != uuid.Nil
}
