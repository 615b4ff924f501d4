// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"lending/internal/delivery/api/response"
	domainerrors "lending/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// messageResponse is the body of endpoints that only acknowledge an action.
type messageResponse struct {
	Message string `json:"message"`
}

// parseID reads a uuid path parameter.
func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name)
	}

	return id, nil
}

// bindAndValidate decodes the request body into req and runs its validate tags.
// It returns false after it has already written the error response.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.HandleAppError(c, err)
	}

	return true, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
