package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the signed session tokens handed to
// supplier-facing views after login.
type TokenService interface {
	// GenerateSessionToken creates a signed token identifying the supplier.
	GenerateSessionToken(supplierID string, email string) (string, error)

	// ValidateSessionToken checks a token string and returns the parsed token.
	ValidateSessionToken(tokenString string) (*jwt.Token, error)

	// SessionDuration returns how long an issued session token stays valid.
	SessionDuration() time.Duration
}
