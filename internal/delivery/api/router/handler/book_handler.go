package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lending/internal/delivery/api/response"
	"lending/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// BookHandler serves the catalog endpoints.
type BookHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewBookHandler is the constructor for BookHandler
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateBookRequest represents the request body for adding a title to the catalog
type CreateBookRequest struct {
	Title           string     `json:"title"`
	Genre           string     `json:"genre"`
	Author          string     `json:"author"`
	Synopsis        string     `json:"synopsis"`
	NumberOfPages   int        `json:"numberOfPages"`
	Language        string     `json:"language"`
	Publisher       string     `json:"publisher"`
	PublicationDate *time.Time `json:"publicationDate"`
	NumberOfCopies  *int       `json:"numberOfCopies"`
}

// UpdateBookRequest represents the request body for editing descriptive fields.
// numberOfCopies is not accepted here; stock changes go through the stock endpoint.
type UpdateBookRequest struct {
	Title           *string    `json:"title"`
	Genre           *string    `json:"genre"`
	Author          *string    `json:"author"`
	Synopsis        *string    `json:"synopsis"`
	NumberOfPages   *int       `json:"numberOfPages"`
	Language        *string    `json:"language"`
	Publisher       *string    `json:"publisher"`
	PublicationDate *time.Time `json:"publicationDate"`
}

// AdjustStockRequest represents the request body for overriding the copy count
type AdjustStockRequest struct {
	NumberOfCopies *int `json:"numberOfCopies" validate:"required,gte=0"`
}

// ListBooks returns the whole catalog
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.catalogUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, books)
}

// GetBook returns one catalog entry
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.catalogUC.Get(c.Request().Context(), bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book)
}

// CreateBook adds a title to the catalog
func (h *BookHandler) CreateBook(c echo.Context) error {
	var req CreateBookRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	book, err := h.catalogUC.Create(c.Request().Context(), usecase.CreateBookInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, book)
}

// UpdateBook edits the descriptive fields of a title
func (h *BookHandler) UpdateBook(c echo.Context) error {
	bookID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateBookRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	book, err := h.catalogUC.UpdateDetails(c.Request().Context(), bookID, usecase.UpdateBookInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book)
}

// DeleteBook removes a title that has no copies out on loan
func (h *BookHandler) DeleteBook(c echo.Context) error {
	bookID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.Delete(c.Request().Context(), bookID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AdjustStock overwrites the number of copies on the shelf
func (h *BookHandler) AdjustStock(c echo.Context) error {
	bookID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AdjustStockRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	book, err := h.catalogUC.AdjustStock(c.Request().Context(), bookID, *req.NumberOfCopies)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book)
}
