package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// contextKeyUser holds the authenticated *entity.User on the echo context.
	contextKeyUser = "user"
)

// AuthMiddleware resolves bearer tokens to users and gates routes by role.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate rejects the request unless it carries a token for a usable account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header must be a bearer token")
		}

		ctx := c.Request().Context()
		user, err := m.sessionUC.Authenticate(ctx, strings.TrimSpace(tokenString))
		if err != nil {
			return err
		}

		c.Set(contextKeyUser, user)

		// Later log lines of this request carry the caller
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole only lets users with the given role through. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUser(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if user.Role != role {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetUser returns the authenticated user stored by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	user, ok := GetUser(c)
	if !ok {
		return uuid.Nil, false
	}

	return user.ID, true
}
