package usecase

import (
	"context"
	"time"

	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BorrowInput identifies the book to lend and the caller borrowing it.
type BorrowInput struct {
	BookID     uuid.UUID
	BorrowerID uuid.UUID
}

// ReturnInput identifies the loan being closed and the caller returning it.
type ReturnInput struct {
	LoanID     uuid.UUID
	BorrowerID uuid.UUID
}

// UpdateLoanInput carries the fields an admin may overwrite. Nil fields are left as they are.
type UpdateLoanInput struct {
	BookTitle       *string
	HasBeenReturned *bool
	ReturnDate      *time.Time
	RetrieveDate    *time.Time
}

// --- Output DTOs ---

// ReturnOutput reports the three records touched by a return.
type ReturnOutput struct {
	Loan *entity.Loan
	Book *entity.Book
	User *entity.User
}

// LoanUsecase is the loan ledger: every borrow and return is one atomic transaction.
type LoanUsecase interface {
	Borrow(ctx context.Context, input BorrowInput) (*entity.Loan, error)
	ReturnBook(ctx context.Context, input ReturnInput) (*ReturnOutput, error)
	ListByBorrower(ctx context.Context, borrowerID uuid.UUID) ([]*entity.Loan, error)

	// GetSlip renders the loan slip QR code. Only the borrower or an admin may fetch it.
	GetSlip(ctx context.Context, loanID uuid.UUID, requester *entity.User) ([]byte, error)
}

// LoanAdminUsecase holds the administrative overrides. They skip the ledger checks and
// can leave copy counts or borrower pointers inconsistent; callers are trusted admins.
type LoanAdminUsecase interface {
	ListAll(ctx context.Context) ([]*entity.Loan, error)
	GetByID(ctx context.Context, loanID uuid.UUID) (*entity.Loan, error)
	UpdateLoan(ctx context.Context, loanID uuid.UUID, input UpdateLoanInput) (*entity.Loan, error)
	DeleteLoan(ctx context.Context, loanID uuid.UUID) error
}
