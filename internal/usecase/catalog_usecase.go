package usecase

import (
	"context"
	"time"

	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookInput defines a new catalog entry. NumberOfCopies defaults to 1 when nil.
type CreateBookInput struct {
	Title           string
	Genre           string
	Author          string
	Synopsis        string
	NumberOfPages   int
	Language        string
	Publisher       string
	PublicationDate *time.Time
	NumberOfCopies  *int
}

// UpdateBookInput carries descriptive fields only. Nil fields are left as they are.
type UpdateBookInput struct {
	Title           *string
	Genre           *string
	Author          *string
	Synopsis        *string
	NumberOfPages   *int
	Language        *string
	Publisher       *string
	PublicationDate *time.Time
}

// CatalogUsecase manages book records. It never touches copy counts except through AdjustStock.
type CatalogUsecase interface {
	Create(ctx context.Context, input CreateBookInput) (*entity.Book, error)
	List(ctx context.Context) ([]*entity.Book, error)
	Get(ctx context.Context, bookID uuid.UUID) (*entity.Book, error)
	UpdateDetails(ctx context.Context, bookID uuid.UUID, input UpdateBookInput) (*entity.Book, error)

	// Delete refuses while any loan of the book is still open.
	Delete(ctx context.Context, bookID uuid.UUID) error

	// AdjustStock overwrites the available copy count (admin override).
	AdjustStock(ctx context.Context, bookID uuid.UUID, copies int) (*entity.Book, error)
}
