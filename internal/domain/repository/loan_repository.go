package repository

import (
	"context"
	"errors"

	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLoanNotFound is returned when a loan is not found.
var ErrLoanNotFound = errors.New("loan not found")

// LoanRepository defines persistence operations for loan records.
type LoanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByIDForUpdate retrieves a loan and locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByBorrower lists a borrower's loans, newest first.
	FindByBorrower(ctx context.Context, borrowerID uuid.UUID) ([]*entity.Loan, error)

	// FindAll lists every loan, newest first.
	FindAll(ctx context.Context) ([]*entity.Loan, error)

	// CountOpenByBook counts unreturned loans of a book.
	CountOpenByBook(ctx context.Context, bookID uuid.UUID) (int64, error)

	Create(ctx context.Context, loan *entity.Loan) error

	Update(ctx context.Context, loan *entity.Loan) error

	Delete(ctx context.Context, id uuid.UUID) error
}
