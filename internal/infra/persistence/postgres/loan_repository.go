package postgres

import (
	"context"
	"time"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

var loanMutableColumns = []string{
	"book_title", "has_been_returned", "return_date", "retrieve_date", "updated_at",
}

// loanRepository implements the repository.LoanRepository interface.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository is the constructor for loanRepository.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{
		db: db,
	}
}

// FindByID retrieves a loan by its unique ID.
func (repo *loanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	var loanM model.LoanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&loanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan by id")
	}

	return toLoanDomain(&loanM), nil
}

// FindByIDForUpdate retrieves a loan with SELECT ... FOR UPDATE.
func (repo *loanRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	var loanM model.LoanModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&loanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to lock loan by id")
	}

	return toLoanDomain(&loanM), nil
}

// FindByBorrower lists a borrower's loans, newest first.
func (repo *loanRepository) FindByBorrower(ctx context.Context, borrowerID uuid.UUID) ([]*entity.Loan, error) {
	var loanModels []*model.LoanModel

	if err := repo.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("created_at DESC, id DESC").
		Find(&loanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find loans by borrower")
	}

	return toLoanDomains(loanModels), nil
}

// FindAll lists every loan, newest first.
func (repo *loanRepository) FindAll(ctx context.Context) ([]*entity.Loan, error) {
	var loanModels []*model.LoanModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&loanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list loans")
	}

	return toLoanDomains(loanModels), nil
}

// CountOpenByBook counts unreturned loans of a book.
func (repo *loanRepository) CountOpenByBook(ctx context.Context, bookID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LoanModel{}).
		Where("book_id = ? AND has_been_returned = ?", bookID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count open loans")
	}

	return count, nil
}

// Create persists a new loan record.
func (repo *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)

	if err := repo.db.WithContext(ctx).Create(loanM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("loan references a missing book or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loan")
	}

	loan.ID = loanM.ID
	loan.CreatedAt = loanM.CreatedAt
	loan.UpdatedAt = loanM.UpdatedAt

	return nil
}

// Update writes the mutable loan columns: title snapshot, return state and dates.
func (repo *loanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)
	loanM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.LoanModel{}).
		Where("id = ?", loan.ID).
		Select(loanMutableColumns).
		Updates(loanM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update loan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLoanNotFound
	}

	loan.UpdatedAt = loanM.UpdatedAt

	return nil
}

// Delete removes a loan record.
func (repo *loanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LoanModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete loan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLoanNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLoanDomains(loanModels []*model.LoanModel) []*entity.Loan {
	loans := make([]*entity.Loan, 0, len(loanModels))
	for _, loanM := range loanModels {
		loans = append(loans, toLoanDomain(loanM))
	}

	return loans
}

func toLoanDomain(data *model.LoanModel) *entity.Loan {
	if data == nil {
		return nil
	}

	return &entity.Loan{
		ID:              data.ID,
		BorrowerID:      data.BorrowerID,
		BookID:          data.BookID,
		BookTitle:       data.BookTitle,
		HasBeenReturned: data.HasBeenReturned,
		RentalDate:      data.RentalDate,
		ReturnDate:      data.ReturnDate,
		RetrieveDate:    data.RetrieveDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromLoanDomain(data *entity.Loan) *model.LoanModel {
	if data == nil {
		return nil
	}

	return &model.LoanModel{
		ID:              data.ID,
		BorrowerID:      data.BorrowerID,
		BookID:          data.BookID,
		BookTitle:       data.BookTitle,
		HasBeenReturned: data.HasBeenReturned,
		RentalDate:      data.RentalDate,
		ReturnDate:      data.ReturnDate,
		RetrieveDate:    data.RetrieveDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
