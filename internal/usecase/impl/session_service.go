package impl

import (
	"context"
	"log/slog"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/domain/service"
	"lending/internal/errors"
	"lending/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	userRepo repository.UserRepository,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate resolves a bearer token to its user.
func (srv *sessionService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	// 1. The account must still exist
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("the user belonging to this token no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token owner")
	}

	// 2. ... and be usable
	if !user.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}
	if user.Session == entity.SessionUnauthenticated {
		return nil, domainerrors.ErrSessionEnded
	}

	// 3. Tokens minted before the last password change are stale
	if user.PasswordChangedAfter(claims.IssuedAt) {
		srv.log(ctx).Debug("Rejected stale token", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrPasswordChanged
	}

	return user, nil
}
