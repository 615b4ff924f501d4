package impl

import (
	"context"
	"testing"
	"time"

	"lending/config"
	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/domain/service"
	"lending/internal/infra/auth"
	mockRepo "lending/internal/mocks/repository"
	mockSvc "lending/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Authenticate(t *testing.T) {
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Role: entity.RoleUser, IssuedAt: issued, ExpiresAt: issued.Add(time.Hour)}
	changedLater := issued.Add(time.Minute)
	changedEarlier := issued.Add(-time.Minute)

	tests := []struct {
		name        string
		validateErr error
		user        *entity.User
		findErr     error
		wantErr     error
	}{
		{
			name: "valid",
			user: &entity.User{ID: userID, IsActive: true, Session: entity.SessionAuthenticated, ChangedPasswordAt: &changedEarlier},
		},
		{
			name:        "expired token",
			validateErr: domainerrors.ErrTokenExpired,
			wantErr:     domainerrors.ErrTokenExpired,
		},
		{
			name:        "malformed token",
			validateErr: assert.AnError,
			wantErr:     domainerrors.ErrInvalidToken,
		},
		{
			name:    "user no longer exists",
			findErr: repository.ErrUserNotFound,
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:    "deactivated",
			user:    &entity.User{ID: userID, IsActive: false, Session: entity.SessionAuthenticated},
			wantErr: domainerrors.ErrAccountInactive,
		},
		{
			name:    "logged out",
			user:    &entity.User{ID: userID, IsActive: true, Session: entity.SessionUnauthenticated},
			wantErr: domainerrors.ErrSessionEnded,
		},
		{
			name:    "password changed after issue",
			user:    &entity.User{ID: userID, IsActive: true, Session: entity.SessionAuthenticated, ChangedPasswordAt: &changedLater},
			wantErr: domainerrors.ErrPasswordChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			userRepo := mockRepo.NewMockUserRepository(t)
			tokenService := mockSvc.NewMockTokenService(t)
			svc := NewSessionService(userRepo, tokenService, newDiscardLogger())

			if tt.validateErr != nil {
				tokenService.EXPECT().ValidateAccessToken("token").Return(nil, tt.validateErr)
			} else {
				tokenService.EXPECT().ValidateAccessToken("token").Return(claims, nil)
				userRepo.EXPECT().FindByID(ctx, userID).Return(tt.user, tt.findErr)
			}

			user, err := svc.Authenticate(ctx, "token")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}

func TestSessionService_Authenticate_EmptyToken(t *testing.T) {
	svc := NewSessionService(mockRepo.NewMockUserRepository(t), mockSvc.NewMockTokenService(t), newDiscardLogger())

	_, err := svc.Authenticate(context.Background(), "")

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

// A token minted before a password change stops working, while the token handed out by the change itself keeps working.
func TestSessionService_TokenIssuedBeforePasswordChangeIsRejected(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "session-test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewSessionService(userRepo, tokens, newDiscardLogger())

	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true, Session: entity.SessionAuthenticated}
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	stale, err := tokens.GenerateAccessToken(user.ID, user.Role)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, stale)
	require.NoError(t, err)

	// iat has second precision; move the change clearly past it.
	user.SetPassword("new-hash", time.Now().Add(2*time.Second))

	_, err = svc.Authenticate(ctx, stale)
	require.ErrorIs(t, err, domainerrors.ErrPasswordChanged)
}
