package impl

import (
	"context"
	"log/slog"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/entity"
	"lending/internal/domain/repository"
	"lending/internal/errors"
	"lending/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// loanAdminService implements the LoanAdminUsecase interface.
type loanAdminService struct {
	txManager repository.TransactionManager
	loanRepo  repository.LoanRepository
	logger    *slog.Logger
}

// LoanAdminServiceParams holds dependencies for LoanAdminService, injected by Fx.
type LoanAdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LoanRepo  repository.LoanRepository
	Logger    *slog.Logger
}

// NewLoanAdminService is the constructor for loanAdminService.
func NewLoanAdminService(params LoanAdminServiceParams) usecase.LoanAdminUsecase {
	return &loanAdminService{
		txManager: params.TxManager,
		loanRepo:  params.LoanRepo,
		logger:    params.Logger,
	}
}

func (srv *loanAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *loanAdminService) ListAll(ctx context.Context) ([]*entity.Loan, error) {
	loans, err := srv.loanRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loans")
	}
	if loans == nil {
		loans = []*entity.Loan{}
	}

	return loans, nil
}

func (srv *loanAdminService) GetByID(ctx context.Context, loanID uuid.UUID) (*entity.Loan, error) {
	loan, err := srv.loanRepo.FindByID(ctx, loanID)
	if err != nil {
		return nil, loanNotFound(err)
	}

	return loan, nil
}

// UpdateLoan overwrites the given fields as-is. Copy counts and borrower pointers are not touched.
func (srv *loanAdminService) UpdateLoan(ctx context.Context, loanID uuid.UUID, input usecase.UpdateLoanInput) (*entity.Loan, error) {
	var loan *entity.Loan

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		loanRepo := txRepoFactory.LoanRepo()

		var err error
		loan, err = loanRepo.FindByIDForUpdate(ctx, loanID)
		if err != nil {
			return loanNotFound(err)
		}

		if input.BookTitle != nil {
			loan.BookTitle = *input.BookTitle
		}
		if input.HasBeenReturned != nil {
			loan.HasBeenReturned = *input.HasBeenReturned
		}
		if input.ReturnDate != nil {
			loan.ReturnDate = *input.ReturnDate
		}
		if input.RetrieveDate != nil {
			retrieved := *input.RetrieveDate
			loan.RetrieveDate = &retrieved
		}

		return loanRepo.Update(ctx, loan)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Warn("Loan overridden by admin", slog.String("loan_id", loanID.String()))

	return loan, nil
}

// DeleteLoan removes the loan record only.
func (srv *loanAdminService) DeleteLoan(ctx context.Context, loanID uuid.UUID) error {
	if err := srv.loanRepo.Delete(ctx, loanID); err != nil {
		return loanNotFound(err)
	}

	srv.log(ctx).Warn("Loan deleted by admin", slog.String("loan_id", loanID.String()))

	return nil
}
