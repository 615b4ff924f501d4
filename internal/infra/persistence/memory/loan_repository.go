package memory

import (
	"bytes"
	"context"
	"slices"

	"lending/internal/domain/entity"
	"lending/internal/domain/repository"

	"github.com/google/uuid"
)

type loanRepository struct {
	run runner
}

// NewLoanRepository returns a repository whose calls each run as their own transaction.
func NewLoanRepository(store *Store) repository.LoanRepository {
	return &loanRepository{run: store.run}
}

func (repo *loanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	var found *entity.Loan
	err := repo.run(ctx, func(t *txn) error {
		l, ok := t.loanTable(false)[id]
		if !ok {
			return repository.ErrLoanNotFound
		}
		found = cloneLoan(l)

		return nil
	})

	return found, err
}

func (repo *loanRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	return repo.FindByID(ctx, id)
}

func (repo *loanRepository) FindByBorrower(ctx context.Context, borrowerID uuid.UUID) ([]*entity.Loan, error) {
	return repo.list(ctx, func(l *entity.Loan) bool { return l.BorrowerID == borrowerID })
}

func (repo *loanRepository) FindAll(ctx context.Context) ([]*entity.Loan, error) {
	return repo.list(ctx, func(*entity.Loan) bool { return true })
}

func (repo *loanRepository) list(ctx context.Context, match func(l *entity.Loan) bool) ([]*entity.Loan, error) {
	loans := []*entity.Loan{}
	err := repo.run(ctx, func(t *txn) error {
		for _, l := range t.loanTable(false) {
			if match(&l) {
				loans = append(loans, cloneLoan(l))
			}
		}

		return nil
	})
	slices.SortFunc(loans, func(a, b *entity.Loan) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return bytes.Compare(b.ID[:], a.ID[:])
	})

	return loans, err
}

func (repo *loanRepository) CountOpenByBook(ctx context.Context, bookID uuid.UUID) (int64, error) {
	var count int64
	err := repo.run(ctx, func(t *txn) error {
		for _, l := range t.loanTable(false) {
			if l.BookID == bookID && l.IsOpen() {
				count++
			}
		}

		return nil
	})

	return count, err
}

func (repo *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	return repo.run(ctx, func(t *txn) error {
		if loan.ID == uuid.Nil {
			loan.ID = uuid.New()
		}
		if loan.CreatedAt.IsZero() {
			loan.CreatedAt = t.store.now()
		}
		loan.UpdatedAt = loan.CreatedAt
		t.loanTable(true)[loan.ID] = *cloneLoan(*loan)

		return nil
	})
}

func (repo *loanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	return repo.run(ctx, func(t *txn) error {
		table := t.loanTable(true)
		stored, ok := table[loan.ID]
		if !ok {
			return repository.ErrLoanNotFound
		}

		stored.BookTitle = loan.BookTitle
		stored.HasBeenReturned = loan.HasBeenReturned
		stored.ReturnDate = loan.ReturnDate
		stored.RetrieveDate = clonePtr(loan.RetrieveDate)
		stored.UpdatedAt = t.store.now()
		table[loan.ID] = stored
		loan.UpdatedAt = stored.UpdatedAt

		return nil
	})
}

func (repo *loanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.run(ctx, func(t *txn) error {
		table := t.loanTable(true)
		if _, ok := table[id]; !ok {
			return repository.ErrLoanNotFound
		}
		delete(table, id)

		return nil
	})
}
