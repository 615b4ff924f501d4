package handler

import (
	"net/http"
	"time"

	"lending/internal/delivery/api/middleware"
	"lending/internal/delivery/api/response"
	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contentTypePNG = "image/png"

// LoanHandlerParams holds dependencies for LoanHandler, injected by Fx.
type LoanHandlerParams struct {
	fx.In

	LoanUC      usecase.LoanUsecase
	LoanAdminUC usecase.LoanAdminUsecase
}

// LoanHandler serves the ledger endpoints and the admin loan corrections.
type LoanHandler struct {
	loanUC      usecase.LoanUsecase
	loanAdminUC usecase.LoanAdminUsecase
}

// NewLoanHandler is the constructor for LoanHandler
func NewLoanHandler(params LoanHandlerParams) *LoanHandler {
	return &LoanHandler{
		loanUC:      params.LoanUC,
		loanAdminUC: params.LoanAdminUC,
	}
}

// UpdateLoanRequest represents the request body of an admin loan correction
type UpdateLoanRequest struct {
	BookTitle       *string    `json:"bookTitle" validate:"omitempty,min=1,max=255"`
	HasBeenReturned *bool      `json:"hasBeenReturned"`
	ReturnDate      *time.Time `json:"returnDate"`
	RetrieveDate    *time.Time `json:"retrieveDate"`
}

// ReturnResponse lists the records a return touched
type ReturnResponse struct {
	Loan *entity.Loan `json:"loan"`
	Book *entity.Book `json:"book"`
	User *entity.User `json:"user"`
}

// Borrow lends one copy of the book to the caller
func (h *LoanHandler) Borrow(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	bookID, err := parseID(c, "bookId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	loan, err := h.loanUC.Borrow(c.Request().Context(), usecase.BorrowInput{
		BookID:     bookID,
		BorrowerID: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, loan)
}

// Return closes the caller's current loan
func (h *LoanHandler) Return(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	loanID, err := parseID(c, "loanId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.loanUC.ReturnBook(c.Request().Context(), usecase.ReturnInput{
		LoanID:     loanID,
		BorrowerID: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ReturnResponse{
		Loan: output.Loan,
		Book: output.Book,
		User: output.User,
	})
}

// ListMine returns the caller's loans, newest first
func (h *LoanHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	loans, err := h.loanUC.ListByBorrower(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loans)
}

// GetSlip renders the loan slip as a PNG QR code
func (h *LoanHandler) GetSlip(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	loanID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.loanUC.GetSlip(c.Request().Context(), loanID, user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, contentTypePNG, png)
}

// ListAll returns every loan (admin)
func (h *LoanHandler) ListAll(c echo.Context) error {
	loans, err := h.loanAdminUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loans)
}

// GetLoan returns one loan (admin)
func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	loan, err := h.loanAdminUC.GetByID(c.Request().Context(), loanID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loan)
}

// UpdateLoan overwrites loan fields without touching copies or borrowers (admin)
func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	loanID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateLoanRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	loan, err := h.loanAdminUC.UpdateLoan(c.Request().Context(), loanID, usecase.UpdateLoanInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loan)
}

// DeleteLoan removes a loan record (admin)
func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	loanID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.loanAdminUC.DeleteLoan(c.Request().Context(), loanID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
