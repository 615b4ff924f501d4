// Package memory is a transactional in-process store behind the repository interfaces.
// Transactions are serialized and see their own staged writes; a failed transaction leaves no trace.
package memory

import (
	"context"
	"maps"
	"slices"
	"time"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/errors"

	"github.com/google/uuid"
)

// Store holds the committed tables. The zero value is not usable, call NewStore.
type Store struct {
	sem   chan struct{}
	now   func() time.Time
	users map[uuid.UUID]entity.User
	books map[uuid.UUID]entity.Book
	loans map[uuid.UUID]entity.Loan
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		sem:   make(chan struct{}, 1),
		now:   time.Now,
		users: map[uuid.UUID]entity.User{},
		books: map[uuid.UUID]entity.Book{},
		loans: map[uuid.UUID]entity.Loan{},
	}
}

// txn stages writes on private copies of the tables it touches.
type txn struct {
	store *Store
	users map[uuid.UUID]entity.User
	books map[uuid.UUID]entity.Book
	loans map[uuid.UUID]entity.Loan
}

func (t *txn) userTable(write bool) map[uuid.UUID]entity.User {
	if t.users != nil {
		return t.users
	}
	if !write {
		return t.store.users
	}
	t.users = maps.Clone(t.store.users)

	return t.users
}

func (t *txn) bookTable(write bool) map[uuid.UUID]entity.Book {
	if t.books != nil {
		return t.books
	}
	if !write {
		return t.store.books
	}
	t.books = maps.Clone(t.store.books)

	return t.books
}

func (t *txn) loanTable(write bool) map[uuid.UUID]entity.Loan {
	if t.loans != nil {
		return t.loans
	}
	if !write {
		return t.store.loans
	}
	t.loans = maps.Clone(t.store.loans)

	return t.loans
}

func (t *txn) commit() {
	if t.users != nil {
		t.store.users = t.users
	}
	if t.books != nil {
		t.store.books = t.books
	}
	if t.loans != nil {
		t.store.loans = t.loans
	}
}

// run executes fn as one serialized transaction, committing only when fn succeeds.
func (s *Store) run(ctx context.Context, fn func(t *txn) error) error {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return domainerrors.ErrTransactionFailed.WrapMessage(errors.Wrap(ctx.Err(), "failed to begin transaction").Error())
	}
	defer func() { <-s.sem }()

	t := &txn{store: s}
	if err := fn(t); err != nil {
		return err
	}

	t.commit()

	return nil
}

// transactionManager implements repository.TransactionManager over a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for the in-memory TransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn within a single serialized transaction. A panic discards the staged writes.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.store.run(ctx, func(t *txn) error {
		return fn(&repositoryFactory{t: t})
	})
}

type repositoryFactory struct {
	t *txn
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{run: f.t.inline}
}

func (f *repositoryFactory) BookRepo() repository.BookRepository {
	return &bookRepository{run: f.t.inline}
}

func (f *repositoryFactory) LoanRepo() repository.LoanRepository {
	return &loanRepository{run: f.t.inline}
}

// inline runs fn inside the already open transaction.
func (t *txn) inline(_ context.Context, fn func(t *txn) error) error {
	return fn(t)
}

type runner func(ctx context.Context, fn func(t *txn) error) error

// --- value copies, so callers never alias stored state ---

func cloneUser(u entity.User) *entity.User {
	u.LoanIDs = slices.Clone(u.LoanIDs)
	u.ChangedPasswordAt = clonePtr(u.ChangedPasswordAt)
	u.PasswordResetExpiresAt = clonePtr(u.PasswordResetExpiresAt)
	u.CurrentBorrowedBookID = clonePtr(u.CurrentBorrowedBookID)
	u.CurrentLoanID = clonePtr(u.CurrentLoanID)

	return &u
}

func cloneBook(b entity.Book) *entity.Book {
	b.PublicationDate = clonePtr(b.PublicationDate)

	return &b
}

func cloneLoan(l entity.Loan) *entity.Loan {
	l.RetrieveDate = clonePtr(l.RetrieveDate)

	return &l
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
