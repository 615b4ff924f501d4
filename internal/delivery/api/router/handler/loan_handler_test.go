package handler_test

import (
	"net/http"
	"testing"
	"time"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoan(borrowerID uuid.UUID) *entity.Loan {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Loan{
		ID:         uuid.New(),
		BorrowerID: borrowerID,
		BookID:     uuid.New(),
		BookTitle:  "Kindred",
		RentalDate: now,
		ReturnDate: now.Add(entity.LoanPeriod),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestLoanHandler_Borrow(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "lent", wantStatus: http.StatusCreated},
		{name: "no copies", err: domainerrors.ErrNoCopiesAvailable, wantStatus: http.StatusConflict, wantCode: "NO_COPIES_AVAILABLE"},
		{name: "already borrowing", err: domainerrors.ErrAlreadyBorrowing, wantStatus: http.StatusConflict, wantCode: "ALREADY_BORROWING"},
		{name: "unknown book", err: domainerrors.ErrBookNotFound, wantStatus: http.StatusNotFound, wantCode: "BOOK_NOT_FOUND"},
		{name: "store abort", err: domainerrors.ErrTransactionFailed, wantStatus: http.StatusInternalServerError, wantCode: "TRANSACTION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t)
			user := newUser(entity.RoleUser)
			f.signIn("jwt", user)
			bookID := uuid.New()

			call := f.loans.EXPECT().Borrow(mock.Anything, usecase.BorrowInput{BookID: bookID, BorrowerID: user.ID})
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(newLoan(user.ID), nil)
			}

			rec := f.do(http.MethodPost, "/loans/"+bookID.String(), "", "jwt")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
			}
		})
	}
}

func TestLoanHandler_BorrowRequiresLogin(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(http.MethodPost, "/loans/"+uuid.NewString(), "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoanHandler_Return(t *testing.T) {
	t.Run("returned", func(t *testing.T) {
		f := createTestAPI(t)
		user := newUser(entity.RoleUser)
		f.signIn("jwt", user)
		loan := newLoan(user.ID)
		loan.HasBeenReturned = true

		f.loans.EXPECT().
			ReturnBook(mock.Anything, usecase.ReturnInput{LoanID: loan.ID, BorrowerID: user.ID}).
			Return(&usecase.ReturnOutput{Loan: loan, Book: newBook(1), User: user}, nil)

		rec := f.do(http.MethodPatch, "/loans/"+loan.ID.String()+"/return", "", "jwt")

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Loan entity.Loan `json:"loan"`
			Book entity.Book `json:"book"`
		}
		decodeData(t, rec, &body)
		assert.True(t, body.Loan.HasBeenReturned)
		assert.Equal(t, 1, body.Book.NumberOfCopies)
	})

	t.Run("someone else's loan", func(t *testing.T) {
		f := createTestAPI(t)
		user := newUser(entity.RoleUser)
		f.signIn("jwt", user)
		loanID := uuid.New()
		f.loans.EXPECT().
			ReturnBook(mock.Anything, usecase.ReturnInput{LoanID: loanID, BorrowerID: user.ID}).
			Return(nil, domainerrors.ErrLoanNotOwned)

		rec := f.do(http.MethodPatch, "/loans/"+loanID.String()+"/return", "", "jwt")

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "LOAN_NOT_OWNED", decode(t, rec).Error.Code)
	})
}

func TestLoanHandler_ListMine(t *testing.T) {
	f := createTestAPI(t)
	user := newUser(entity.RoleUser)
	f.signIn("jwt", user)
	f.loans.EXPECT().ListByBorrower(mock.Anything, user.ID).Return([]*entity.Loan{}, nil)

	rec := f.do(http.MethodGet, "/loans/mine", "", "jwt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestLoanHandler_GetSlip(t *testing.T) {
	f := createTestAPI(t)
	user := newUser(entity.RoleUser)
	f.signIn("jwt", user)
	loanID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")

	f.loans.EXPECT().GetSlip(mock.Anything, loanID, user).Return(png, nil)

	rec := f.do(http.MethodGet, "/loans/"+loanID.String()+"/slip", "", "jwt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestLoanHandler_Admin(t *testing.T) {
	t.Run("regular user cannot list all", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("jwt", newUser(entity.RoleUser))

		rec := f.do(http.MethodGet, "/loans", "", "jwt")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list all", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		f.loanAdmin.EXPECT().ListAll(mock.Anything).Return([]*entity.Loan{newLoan(uuid.New())}, nil)

		rec := f.do(http.MethodGet, "/loans", "", "admin")

		require.Equal(t, http.StatusOK, rec.Code)
		var loans []entity.Loan
		decodeData(t, rec, &loans)
		assert.Len(t, loans, 1)
	})

	t.Run("get missing", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		loanID := uuid.New()
		f.loanAdmin.EXPECT().GetByID(mock.Anything, loanID).Return(nil, domainerrors.ErrLoanNotFound)

		rec := f.do(http.MethodGet, "/loans/"+loanID.String(), "", "admin")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		loan := newLoan(uuid.New())

		f.loanAdmin.EXPECT().
			UpdateLoan(mock.Anything, loan.ID, mock.MatchedBy(func(in usecase.UpdateLoanInput) bool {
				return in.HasBeenReturned != nil && *in.HasBeenReturned &&
					in.ReturnDate != nil && in.ReturnDate.Equal(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)) &&
					in.BookTitle == nil
			})).
			Return(loan, nil)

		rec := f.do(http.MethodPatch, "/loans/"+loan.ID.String(),
			`{"hasBeenReturned":true,"returnDate":"2026-03-20T00:00:00Z"}`, "admin")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		f := createTestAPI(t)
		f.signIn("admin", newUser(entity.RoleAdmin))
		loanID := uuid.New()
		f.loanAdmin.EXPECT().DeleteLoan(mock.Anything, loanID).Return(nil)

		rec := f.do(http.MethodDelete, "/loans/"+loanID.String(), "", "admin")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
