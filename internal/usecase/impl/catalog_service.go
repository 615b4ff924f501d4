package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/errors"
	"lending/internal/usecase"
	"lending/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultCopies = 1

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// bookFields is the validated shape of a catalog entry.
type bookFields struct {
	Title          string `json:"title" validate:"required,max=255"`
	Genre          string `json:"genre" validate:"required"`
	Author         string `json:"author" validate:"required"`
	Synopsis       string `json:"synopsis" validate:"required"`
	NumberOfPages  int    `json:"numberOfPages" validate:"gt=0"`
	NumberOfCopies int    `json:"numberOfCopies" validate:"gte=0"`
}

func validateBook(book *entity.Book) error {
	return validation.Struct(bookFields{
		Title:          book.Title,
		Genre:          book.Genre,
		Author:         book.Author,
		Synopsis:       book.Synopsis,
		NumberOfPages:  book.NumberOfPages,
		NumberOfCopies: book.NumberOfCopies,
	})
}

func (srv *catalogService) Create(ctx context.Context, input usecase.CreateBookInput) (*entity.Book, error) {
	copies := defaultCopies
	if input.NumberOfCopies != nil {
		copies = *input.NumberOfCopies
	}

	book := &entity.Book{
		Title:           strings.TrimSpace(input.Title),
		Genre:           strings.TrimSpace(input.Genre),
		Author:          strings.TrimSpace(input.Author),
		Synopsis:        strings.TrimSpace(input.Synopsis),
		NumberOfPages:   input.NumberOfPages,
		Language:        strings.TrimSpace(input.Language),
		Publisher:       strings.TrimSpace(input.Publisher),
		PublicationDate: input.PublicationDate,
		NumberOfCopies:  copies,
	}
	if err := validateBook(book); err != nil {
		return nil, err
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book added to catalog",
		slog.String("book_id", book.ID.String()),
		slog.Int("copies", book.NumberOfCopies),
	)

	return book, nil
}

func (srv *catalogService) List(ctx context.Context) ([]*entity.Book, error) {
	books, err := srv.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}
	if books == nil {
		books = []*entity.Book{}
	}

	return books, nil
}

func (srv *catalogService) Get(ctx context.Context, bookID uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, bookNotFound(err)
	}

	return book, nil
}

// UpdateDetails changes descriptive fields. The copy count is owned by the loan ledger.
func (srv *catalogService) UpdateDetails(ctx context.Context, bookID uuid.UUID, input usecase.UpdateBookInput) (*entity.Book, error) {
	var book *entity.Book

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		bookRepo := txRepoFactory.BookRepo()

		var err error
		book, err = bookRepo.FindByIDForUpdate(ctx, bookID)
		if err != nil {
			return bookNotFound(err)
		}

		applyBookUpdate(book, input)
		if err := validateBook(book); err != nil {
			return err
		}

		return bookRepo.UpdateDetails(ctx, book)
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

func applyBookUpdate(book *entity.Book, input usecase.UpdateBookInput) {
	setTrimmed := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	setTrimmed(&book.Title, input.Title)
	setTrimmed(&book.Genre, input.Genre)
	setTrimmed(&book.Author, input.Author)
	setTrimmed(&book.Synopsis, input.Synopsis)
	setTrimmed(&book.Language, input.Language)
	setTrimmed(&book.Publisher, input.Publisher)
	if input.NumberOfPages != nil {
		book.NumberOfPages = *input.NumberOfPages
	}
	if input.PublicationDate != nil {
		published := *input.PublicationDate
		book.PublicationDate = &published
	}
}

func (srv *catalogService) Delete(ctx context.Context, bookID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		bookRepo := txRepoFactory.BookRepo()

		if _, err := bookRepo.FindByIDForUpdate(ctx, bookID); err != nil {
			return bookNotFound(err)
		}

		open, err := txRepoFactory.LoanRepo().CountOpenByBook(ctx, bookID)
		if err != nil {
			return errors.Wrap(err, "failed to count open loans")
		}
		if open > 0 {
			return domainerrors.ErrBookHasOpenLoans
		}

		return bookRepo.Delete(ctx, bookID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Book removed from catalog", slog.String("book_id", bookID.String()))

	return nil
}

// AdjustStock overrides the available copy count, e.g. after a stock take.
func (srv *catalogService) AdjustStock(ctx context.Context, bookID uuid.UUID, copies int) (*entity.Book, error) {
	if copies < 0 {
		return nil, domainerrors.NewValidationError(map[string]string{
			"numberOfCopies": "must be greater than or equal to 0",
		})
	}

	var book *entity.Book

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		bookRepo := txRepoFactory.BookRepo()

		var err error
		book, err = bookRepo.FindByIDForUpdate(ctx, bookID)
		if err != nil {
			return bookNotFound(err)
		}

		if err := bookRepo.SetCopies(ctx, bookID, copies); err != nil {
			return errors.Wrap(err, "failed to set copies")
		}
		book.NumberOfCopies = copies
		book.UpdatedAt = time.Now()

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Warn("Book stock overridden",
		slog.String("book_id", bookID.String()),
		slog.Int("copies", copies),
	)

	return book, nil
}
