package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	mockUsecase "lending/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true, Session: entity.SessionAuthenticated}

	tests := []struct {
		name      string
		header    string
		setupMock func(session *mockUsecase.MockSessionUsecase)
		wantErr   error
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:    "not a bearer token",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:    "empty bearer token",
			header:  "Bearer   ",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:   "stale token",
			header: "Bearer old",
			setupMock: func(session *mockUsecase.MockSessionUsecase) {
				session.EXPECT().Authenticate(mock.Anything, "old").Return(nil, domainerrors.ErrPasswordChanged)
			},
			wantErr: domainerrors.ErrPasswordChanged,
		},
		{
			name:   "valid",
			header: "Bearer good",
			setupMock: func(session *mockUsecase.MockSessionUsecase) {
				session.EXPECT().Authenticate(mock.Anything, "good").Return(user, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mockUsecase.NewMockSessionUsecase(t)
			if tt.setupMock != nil {
				tt.setupMock(session)
			}
			m := NewAuthMiddleware(session)
			c, rec := newAuthContext(tt.header)

			err := m.Authenticate(okHandler)(c)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				_, ok := GetUser(c)
				assert.False(t, ok)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, rec.Code)

			got, ok := GetUserID(c)
			require.True(t, ok)
			assert.Equal(t, user.ID, got)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockSessionUsecase(t))
	adminOnly := m.RequireRole(entity.RoleAdmin)

	t.Run("no user", func(t *testing.T) {
		c, _ := newAuthContext("")

		err := adminOnly(okHandler)(c)

		require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("wrong role", func(t *testing.T) {
		c, _ := newAuthContext("")
		c.Set(contextKeyUser, &entity.User{ID: uuid.New(), Role: entity.RoleUser})

		err := adminOnly(okHandler)(c)

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(contextKeyUser, &entity.User{ID: uuid.New(), Role: entity.RoleAdmin})

		require.NoError(t, adminOnly(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
