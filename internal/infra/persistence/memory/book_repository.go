package memory

import (
	"context"
	"slices"
	"strings"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"

	"github.com/google/uuid"
)

type bookRepository struct {
	run runner
}

// NewBookRepository returns a repository whose calls each run as their own transaction.
func NewBookRepository(store *Store) repository.BookRepository {
	return &bookRepository{run: store.run}
}

func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var found *entity.Book
	err := repo.run(ctx, func(t *txn) error {
		b, ok := t.bookTable(false)[id]
		if !ok {
			return repository.ErrBookNotFound
		}
		found = cloneBook(b)

		return nil
	})

	return found, err
}

func (repo *bookRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	return repo.FindByID(ctx, id)
}

func (repo *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	var books []*entity.Book
	err := repo.run(ctx, func(t *txn) error {
		books = make([]*entity.Book, 0, len(t.bookTable(false)))
		for _, b := range t.bookTable(false) {
			books = append(books, cloneBook(b))
		}

		return nil
	})
	slices.SortFunc(books, func(a, b *entity.Book) int {
		return strings.Compare(a.Title, b.Title)
	})

	return books, err
}

func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	if book.NumberOfCopies < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("number of copies cannot be negative")
	}

	return repo.run(ctx, func(t *txn) error {
		table := t.bookTable(true)
		if titleTaken(table, book.ID, book.Title) {
			return domainerrors.ErrBookAlreadyExists.WrapMessage("title already exists")
		}

		if book.ID == uuid.Nil {
			book.ID = uuid.New()
		}
		now := t.store.now()
		book.CreatedAt = now
		book.UpdatedAt = now
		table[book.ID] = *cloneBook(*book)

		return nil
	})
}

func (repo *bookRepository) UpdateDetails(ctx context.Context, book *entity.Book) error {
	return repo.run(ctx, func(t *txn) error {
		table := t.bookTable(true)
		stored, ok := table[book.ID]
		if !ok {
			return repository.ErrBookNotFound
		}
		if titleTaken(table, book.ID, book.Title) {
			return domainerrors.ErrBookAlreadyExists.WrapMessage("title already exists")
		}

		next := cloneBook(*book)
		next.NumberOfCopies = stored.NumberOfCopies
		next.CreatedAt = stored.CreatedAt
		next.UpdatedAt = t.store.now()
		table[book.ID] = *next
		book.UpdatedAt = next.UpdatedAt

		return nil
	})
}

func (repo *bookRepository) SetCopies(ctx context.Context, id uuid.UUID, copies int) error {
	if copies < 0 {
		return domainerrors.ErrNoCopiesAvailable.WrapMessage("number of copies cannot be negative")
	}

	return repo.run(ctx, func(t *txn) error {
		table := t.bookTable(true)
		stored, ok := table[id]
		if !ok {
			return repository.ErrBookNotFound
		}

		stored.NumberOfCopies = copies
		stored.UpdatedAt = t.store.now()
		table[id] = stored

		return nil
	})
}

func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.run(ctx, func(t *txn) error {
		table := t.bookTable(true)
		if _, ok := table[id]; !ok {
			return repository.ErrBookNotFound
		}
		delete(table, id)

		return nil
	})
}

func titleTaken(table map[uuid.UUID]entity.Book, self uuid.UUID, title string) bool {
	for id, b := range table {
		if id != self && b.Title == title {
			return true
		}
	}

	return false
}
