// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmailForUpdate retrieves a user by e-mail and locks the row until the transaction ends.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error)

	// FindByResetTokenHashForUpdate retrieves and locks the user holding a pending password reset.
	// A token consumed by a concurrent transaction is reported as not found.
	FindByResetTokenHashForUpdate(ctx context.Context, tokenHash string) (*entity.User, error)

	// FindActive lists every active account.
	FindActive(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update writes profile, credential, session and status fields.
	// Loan pointers and loan history are never written here.
	Update(ctx context.Context, user *entity.User) error

	// SaveLoanState writes the loan pointers and loan history only.
	SaveLoanState(ctx context.Context, user *entity.User) error

	// SavePasswordReset writes the pending reset token hash and expiry only.
	SavePasswordReset(ctx context.Context, user *entity.User) error
}
