// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/domain/service"
	"lending/internal/errors"
	"lending/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// loanService implements the LoanUsecase interface.
// Row locks are always taken user first, then book, so borrow and return cannot deadlock each other.
type loanService struct {
	txManager repository.TransactionManager
	loanRepo  repository.LoanRepository
	qrService service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// LoanServiceParams holds dependencies for LoanService, injected by Fx.
type LoanServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LoanRepo  repository.LoanRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewLoanService is the constructor for loanService.
func NewLoanService(params LoanServiceParams) usecase.LoanUsecase {
	return &loanService{
		txManager: params.TxManager,
		loanRepo:  params.LoanRepo,
		qrService: params.QRService,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *loanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Borrow lends one copy of a book to the borrower.
func (srv *loanService) Borrow(ctx context.Context, input usecase.BorrowInput) (*entity.Loan, error) {
	var loan *entity.Loan

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()
		bookRepo := txRepoFactory.BookRepo()

		borrower, userErr := userRepo.FindByIDForUpdate(ctx, input.BorrowerID)
		if userErr != nil && !errors.Is(userErr, repository.ErrUserNotFound) {
			return errors.Wrap(userErr, "failed to lock borrower")
		}

		book, err := bookRepo.FindByIDForUpdate(ctx, input.BookID)
		if err != nil {
			return bookNotFound(err)
		}
		if !book.HasCopies() {
			return domainerrors.ErrNoCopiesAvailable
		}

		if userErr != nil {
			return domainerrors.ErrUserNotFound
		}
		if borrower.HasActiveLoan() {
			return domainerrors.ErrAlreadyBorrowing
		}

		loan = entity.Checkout(book, borrower, srv.now())

		if err := txRepoFactory.LoanRepo().Create(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to create loan")
		}
		if err := bookRepo.SetCopies(ctx, book.ID, book.NumberOfCopies); err != nil {
			return errors.Wrap(err, "failed to decrement copies")
		}
		if err := userRepo.SaveLoanState(ctx, borrower); err != nil {
			return errors.Wrap(err, "failed to save borrower loan state")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Borrow rejected",
			slog.String("book_id", input.BookID.String()),
			slog.String("borrower_id", input.BorrowerID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Book borrowed",
		slog.String("loan_id", loan.ID.String()),
		slog.String("book_id", loan.BookID.String()),
		slog.String("borrower_id", loan.BorrowerID.String()),
		slog.Time("due", loan.ReturnDate),
	)

	return loan, nil
}

// ReturnBook closes the borrower's current loan and puts the copy back on the shelf.
func (srv *loanService) ReturnBook(ctx context.Context, input usecase.ReturnInput) (*usecase.ReturnOutput, error) {
	var out usecase.ReturnOutput

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()
		bookRepo := txRepoFactory.BookRepo()
		loanRepo := txRepoFactory.LoanRepo()

		borrower, err := userRepo.FindByIDForUpdate(ctx, input.BorrowerID)
		if err != nil {
			return userNotFound(err)
		}
		if !borrower.HasActiveLoan() {
			return domainerrors.ErrNoActiveLoan
		}

		book, err := bookRepo.FindByIDForUpdate(ctx, *borrower.CurrentBorrowedBookID)
		if err != nil {
			return notFound(err, repository.ErrBookNotFound, domainerrors.ErrBorrowedBookMissing, "failed to lock borrowed book")
		}

		loan, err := loanRepo.FindByIDForUpdate(ctx, input.LoanID)
		if err != nil {
			return loanNotFound(err)
		}

		if err := checkReturnable(loan, borrower); err != nil {
			return err
		}

		entity.CheckIn(loan, book, borrower, srv.now())

		if err := loanRepo.Update(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to close loan")
		}
		if err := bookRepo.SetCopies(ctx, book.ID, book.NumberOfCopies); err != nil {
			return errors.Wrap(err, "failed to increment copies")
		}
		if err := userRepo.SaveLoanState(ctx, borrower); err != nil {
			return errors.Wrap(err, "failed to clear borrower loan state")
		}

		out = usecase.ReturnOutput{Loan: loan, Book: book, User: borrower}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Return rejected",
			slog.String("loan_id", input.LoanID.String()),
			slog.String("borrower_id", input.BorrowerID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Book returned",
		slog.String("loan_id", out.Loan.ID.String()),
		slog.String("book_id", out.Book.ID.String()),
		slog.Int("copies", out.Book.NumberOfCopies),
	)

	return &out, nil
}

// checkReturnable enforces that the loan is the caller's current, still open loan.
func checkReturnable(loan *entity.Loan, borrower *entity.User) error {
	if loan.BorrowerID != borrower.ID {
		return domainerrors.ErrLoanNotOwned
	}
	if loan.HasBeenReturned {
		return domainerrors.ErrLoanAlreadyReturned
	}
	if loan.BookID != *borrower.CurrentBorrowedBookID {
		return domainerrors.ErrLoanMismatch
	}
	if borrower.CurrentLoanID == nil || loan.ID != *borrower.CurrentLoanID {
		return domainerrors.ErrLoanMismatch
	}

	return nil
}

// ListByBorrower lists the borrower's loans, newest first. No loans is an empty list.
func (srv *loanService) ListByBorrower(ctx context.Context, borrowerID uuid.UUID) ([]*entity.Loan, error) {
	loans, err := srv.loanRepo.FindByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loans")
	}
	if loans == nil {
		loans = []*entity.Loan{}
	}

	return loans, nil
}

// GetSlip renders the QR slip of a loan for its borrower or an admin.
func (srv *loanService) GetSlip(ctx context.Context, loanID uuid.UUID, requester *entity.User) ([]byte, error) {
	loan, err := srv.loanRepo.FindByID(ctx, loanID)
	if err != nil {
		return nil, loanNotFound(err)
	}

	if requester == nil || (!requester.IsAdmin() && loan.BorrowerID != requester.ID) {
		return nil, domainerrors.ErrLoanNotOwned
	}

	png, err := srv.qrService.GenerateLoanSlip(loan)
	if err != nil {
		srv.log(ctx).Error("Failed to render loan slip", slog.String("loan_id", loanID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render loan slip")
	}

	return png, nil
}
