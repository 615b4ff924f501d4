package repository

import (
	"context"
	"errors"

	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines persistence operations for catalog entries.
type BookRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByIDForUpdate retrieves a book and locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	FindAll(ctx context.Context) ([]*entity.Book, error)

	Create(ctx context.Context, book *entity.Book) error

	// UpdateDetails writes descriptive fields. The copy count is left untouched.
	UpdateDetails(ctx context.Context, book *entity.Book) error

	// SetCopies overwrites the available copy count.
	SetCopies(ctx context.Context, id uuid.UUID, copies int) error

	Delete(ctx context.Context, id uuid.UUID) error
}
