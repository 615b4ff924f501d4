package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/errors"
	"lending/internal/usecase"
	"lending/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe retrieves the caller's profile
func (srv *profileService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, userNotFound(err)
	}

	return user, nil
}

// UpdateMe changes name and e-mail. Credentials and loan state have their own flows.
func (srv *profileService) UpdateMe(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	fields := validation.Fields{}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		fields.Add("name", "is required")
	}
	if input.Email != nil && !validation.Email(normalizeEmail(*input.Email)) {
		fields.Add("email", "must be a valid e-mail address")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return userNotFound(err)
		}

		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Email != nil {
			user.Email = normalizeEmail(*input.Email)
		}

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.String("user_id", userID.String()))

	return user, nil
}

// DeactivateMe soft-deletes the caller's account.
func (srv *profileService) DeactivateMe(ctx context.Context, userID uuid.UUID) error {
	return srv.deactivate(ctx, userID)
}

// ListActive lists active accounts.
func (srv *profileService) ListActive(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	if users == nil {
		users = []*entity.User{}
	}

	return users, nil
}

// GetByID retrieves any account, active or not.
func (srv *profileService) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.GetMe(ctx, userID)
}

// DeactivateByID soft-deletes another account.
func (srv *profileService) DeactivateByID(ctx context.Context, userID uuid.UUID) error {
	return srv.deactivate(ctx, userID)
}

// deactivate refuses while the account still holds a book, otherwise the copy would never come back.
func (srv *profileService) deactivate(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return userNotFound(err)
		}
		if user.HasActiveLoan() {
			return domainerrors.ErrUserHoldsBook
		}
		if !user.IsActive {
			return nil
		}

		user.IsActive = false

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account deactivated", slog.String("user_id", userID.String()))

	return nil
}
