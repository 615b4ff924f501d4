package usecase

import (
	"context"

	"lending/internal/domain/entity"
)

// SessionUsecase resolves a bearer token to the calling user.
type SessionUsecase interface {
	// Authenticate fails with an Unauthorized error when the token is invalid or expired,
	// or when the user is missing, deactivated, logged out or changed their password after issue.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}
