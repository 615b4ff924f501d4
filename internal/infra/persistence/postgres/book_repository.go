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

var bookDetailColumns = []string{
	"title", "genre", "author", "synopsis", "number_of_pages",
	"language", "publisher", "publication_date", "updated_at",
}

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// FindByID retrieves a book by its unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindByIDForUpdate retrieves a book with SELECT ... FOR UPDATE.
func (repo *bookRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to lock book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindAll lists the catalog ordered by title.
func (repo *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	if err := repo.db.WithContext(ctx).
		Order("title ASC").
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// Create persists a new catalog entry.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBookAlreadyExists.WrapMessage("title already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("number of copies cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// UpdateDetails writes the descriptive columns only.
func (repo *bookRepository) UpdateDetails(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)
	bookM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Select(bookDetailColumns).
		Updates(bookM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrBookAlreadyExists.WrapMessage("title already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// SetCopies overwrites number_of_copies.
func (repo *bookRepository) SetCopies(ctx context.Context, id uuid.UUID, copies int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"number_of_copies": copies,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrNoCopiesAvailable.WrapMessage("number of copies cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set book copies")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes a catalog entry.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:              data.ID,
		Title:           data.Title,
		Genre:           data.Genre,
		Author:          data.Author,
		Synopsis:        data.Synopsis,
		NumberOfPages:   data.NumberOfPages,
		Language:        data.Language,
		Publisher:       data.Publisher,
		PublicationDate: data.PublicationDate,
		NumberOfCopies:  data.NumberOfCopies,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:              data.ID,
		Title:           data.Title,
		Genre:           data.Genre,
		Author:          data.Author,
		Synopsis:        data.Synopsis,
		NumberOfPages:   data.NumberOfPages,
		Language:        data.Language,
		Publisher:       data.Publisher,
		PublicationDate: data.PublicationDate,
		NumberOfCopies:  data.NumberOfCopies,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
