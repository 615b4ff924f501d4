package handler_test

import (
	"net/http"
	"testing"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/errors"
	"lending/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBook(copies int) *entity.Book {
	return &entity.Book{
		ID:             uuid.New(),
		Title:          "Kindred",
		Genre:          "Fiction",
		Author:         "Octavia E. Butler",
		Synopsis:       "Dana is pulled back in time.",
		NumberOfPages:  264,
		NumberOfCopies: copies,
	}
}

func TestBookHandler_PublicReads(t *testing.T) {
	t.Run("list without a token", func(t *testing.T) {
		f := createTestAPI(t)
		book := newBook(2)
		f.catalog.EXPECT().List(mock.Anything).Return([]*entity.Book{book}, nil)

		rec := f.do(http.MethodGet, "/books", "", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var books []entity.Book
		decodeData(t, rec, &books)
		require.Len(t, books, 1)
		assert.Equal(t, 2, books[0].NumberOfCopies)
	})

	t.Run("get missing", func(t *testing.T) {
		f := createTestAPI(t)
		id := uuid.New()
		f.catalog.EXPECT().Get(mock.Anything, id).Return(nil, domainerrors.ErrBookNotFound)

		rec := f.do(http.MethodGet, "/books/"+id.String(), "", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "BOOK_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("store failure stays generic", func(t *testing.T) {
		f := createTestAPI(t)
		f.catalog.EXPECT().List(mock.Anything).Return(nil, errors.New("pq: relation \"books\" does not exist"))

		rec := f.do(http.MethodGet, "/books", "", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "relation")
		assert.NotEmpty(t, env.Meta.RequestID)
	})
}

func TestBookHandler_Create(t *testing.T) {
	t.Run("admin creates", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		book := newBook(3)

		f.catalog.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in usecase.CreateBookInput) bool {
				return in.Title == "Kindred" && in.NumberOfPages == 264 && in.NumberOfCopies != nil && *in.NumberOfCopies == 3
			})).
			Return(book, nil)

		rec := f.do(http.MethodPost, "/books",
			`{"title":"Kindred","genre":"Fiction","author":"Octavia E. Butler","synopsis":"Dana is pulled back in time.","numberOfPages":264,"numberOfCopies":3}`,
			"admin")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate title", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		f.catalog.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrBookAlreadyExists)

		rec := f.do(http.MethodPost, "/books", `{"title":"Kindred"}`, "admin")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "BOOK_ALREADY_EXISTS", decode(t, rec).Error.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := createTestAPI(t)

		rec := f.do(http.MethodPost, "/books", `{"title":"Kindred"}`, "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
	})
}

func TestBookHandler_UpdateAndDelete(t *testing.T) {
	t.Run("update passes descriptive fields only", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		book := newBook(1)

		f.catalog.EXPECT().
			UpdateDetails(mock.Anything, book.ID, mock.MatchedBy(func(in usecase.UpdateBookInput) bool {
				return in.Synopsis != nil && *in.Synopsis == "New blurb" && in.Title == nil
			})).
			Return(book, nil)

		rec := f.do(http.MethodPatch, "/books/"+book.ID.String(), `{"synopsis":"New blurb","numberOfCopies":99}`, "admin")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete with open loans", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		id := uuid.New()
		f.catalog.EXPECT().Delete(mock.Anything, id).Return(domainerrors.ErrBookHasOpenLoans)

		rec := f.do(http.MethodDelete, "/books/"+id.String(), "", "admin")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "BOOK_HAS_OPEN_LOANS", decode(t, rec).Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		id := uuid.New()
		f.catalog.EXPECT().Delete(mock.Anything, id).Return(nil)

		rec := f.do(http.MethodDelete, "/books/"+id.String(), "", "admin")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestBookHandler_AdjustStock(t *testing.T) {
	t.Run("sets copies", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		book := newBook(5)
		f.catalog.EXPECT().AdjustStock(mock.Anything, book.ID, 5).Return(book, nil)

		rec := f.do(http.MethodPatch, "/books/"+book.ID.String()+"/stock", `{"numberOfCopies":5}`, "admin")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing", body: `{}`},
		{name: "negative", body: `{"numberOfCopies":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t)
			f.signIn("admin", newUser(entity.RoleAdmin))

			rec := f.do(http.MethodPatch, "/books/"+uuid.NewString()+"/stock", tt.body, "admin")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode(t, rec).Error.Details, "numberOfCopies")
		})
	}
}
