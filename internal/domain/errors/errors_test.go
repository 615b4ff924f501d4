package errors

import (
	"net/http"
	"testing"

	"lending/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapKeepsAppError(t *testing.T) {
	err := ErrNoCopiesAvailable.WrapMessage("borrow")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "NO_COPIES_AVAILABLE", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrNoCopiesAvailable))
}

func TestBaseError_WithDetailsMatchesCatalogueEntry(t *testing.T) {
	detailed := ErrLoanNotFound.WithDetails("loan 42")

	assert.True(t, errors.Is(detailed, ErrLoanNotFound))
	assert.False(t, errors.Is(detailed, ErrBookNotFound))
	assert.Equal(t, "loan 42", detailed.Details())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{
		"title":  "is required",
		"author": "is required",
	})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "invalid input data: author: is required; title: is required", err.Error())

	fields := err.Fields()
	fields["title"] = "mutated"
	assert.Equal(t, "is required", err.Fields()["title"])
}

func TestDatabaseExecuteError_HidesCauseFromMessage(t *testing.T) {
	cause := errors.New("pq: relation \"books\" does not exist")
	err := NewDatabaseExecuteError(cause, "failed to create book")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.NotContains(t, err.Message(), "relation")
	assert.True(t, errors.Is(err, cause))
}
