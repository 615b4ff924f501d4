package handler

import (
	"net/http"

	"lending/internal/delivery/api/middleware"
	"lending/internal/delivery/api/response"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the caller's own profile and the admin user views.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// UpdateMeRequest represents the request body for editing the caller's profile.
// Password fields are decoded only so that they can be refused.
type UpdateMeRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
	CurrentPassword *string `json:"currentPassword"`
}

// GetMe returns the caller's profile
func (h *ProfileHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	user, err := h.profileUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateMe edits the caller's name and e-mail
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req UpdateMeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid request body")
	}

	if req.Password != nil || req.ConfirmPassword != nil || req.CurrentPassword != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError(map[string]string{
			"password": "cannot be changed here, use /users/me/password",
		}))
	}

	user, err := h.profileUC.UpdateMe(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeactivateMe soft-deletes the caller's account
func (h *ProfileHandler) DeactivateMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	if err := h.profileUC.DeactivateMe(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListUsers returns every active account
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	users, err := h.profileUC.ListActive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser returns one account by id
func (h *ProfileHandler) GetUser(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.GetByID(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeactivateUser soft-deletes an account on behalf of an admin
func (h *ProfileHandler) DeactivateUser(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.DeactivateByID(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
