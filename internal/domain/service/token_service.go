package service

import (
	"time"

	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the verified content of an access token.
type Claims struct {
	UserID    uuid.UUID
	Role      entity.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs a token for the user.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateAccessToken verifies signature and expiry and returns the claims.
	// Expired tokens yield domainerrors.ErrTokenExpired, anything else unusable yields ErrInvalidToken.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
