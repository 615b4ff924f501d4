package usecase

import (
	"context"

	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the profile fields a user may change. Nil fields are left as they are.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

// ProfileUsecase covers self-service profile operations and the admin user views.
type ProfileUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
	DeactivateMe(ctx context.Context, userID uuid.UUID) error

	ListActive(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// DeactivateByID refuses while the user still holds a book.
	DeactivateByID(ctx context.Context, userID uuid.UUID) error
}
