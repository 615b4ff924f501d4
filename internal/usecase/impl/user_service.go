package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"lending/config"
	deliverycontext "lending/internal/delivery/context"
	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/domain/service"
	"lending/internal/errors"
	"lending/internal/usecase"
	"lending/internal/util"
	"lending/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	resetTokenBytes   = 32
	resetPasswordPath = "/users/reset-password/"
	resetMailSubject  = "Your password reset token (valid for %s)"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	notifier       service.NotificationSender
	passwordMinLen int
	resetTTL       time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.NotificationSender
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	passwordMinLen := 8
	resetTTL := 10 * time.Minute
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.PasswordMinLen > 0 {
			passwordMinLen = params.Config.Auth.PasswordMinLen
		}
		if params.Config.Auth.PasswordResetTTL > 0 {
			resetTTL = params.Config.Auth.PasswordResetTTL
		}
	}

	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		notifier:       params.Notifier,
		passwordMinLen: passwordMinLen,
		resetTTL:       resetTTL,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// checkNewPassword validates a password and its confirmation.
func (srv *userService) checkNewPassword(fields validation.Fields, password, confirm string) {
	switch {
	case password == "":
		fields.Add("password", "is required")
	case len(password) < srv.passwordMinLen:
		fields.Add("password", "must be at least "+strconv.Itoa(srv.passwordMinLen)+" characters long")
	}

	if confirm == "" {
		fields.Add("confirmPassword", "is required")
	} else if confirm != password {
		fields.Add("confirmPassword", "must match password")
	}
}

func (srv *userService) hash(password string) (string, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return hash, nil
}

func (srv *userService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

// Register creates a regular account and logs it in. Signup never grants the admin role.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	fields := validation.Fields{}
	if name == "" {
		fields.Add("name", "is required")
	}
	if email == "" {
		fields.Add("email", "is required")
	} else if !validation.Email(email) {
		fields.Add("email", "must be a valid e-mail address")
	}
	srv.checkNewPassword(fields, input.Password, input.ConfirmPassword)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	hash, err := srv.hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	user := &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         entity.RoleUser,
		IsActive:     true,
		Session:      entity.SessionAuthenticated,
		LoanIDs:      []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return srv.issue(user)
}

// verifyCredentials locks the account behind email and checks its password.
// Unknown e-mail and wrong password are indistinguishable to the caller.
func (srv *userService) verifyCredentials(ctx context.Context, userRepo repository.UserRepository, input usecase.LoginInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := userRepo.FindByEmailForUpdate(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// Login checks credentials and marks the session authenticated.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		var err error
		user, err = srv.verifyCredentials(ctx, userRepo, input)
		if err != nil {
			return err
		}
		if !user.IsActive {
			return domainerrors.ErrAccountInactive
		}

		user.Session = entity.SessionAuthenticated

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()))

	return srv.issue(user)
}

// Logout marks the session unauthenticated so every outstanding token stops working.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return userNotFound(err)
		}

		user.Session = entity.SessionUnauthenticated

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User logged out", slog.String("user_id", userID.String()))

	return nil
}

// ForgotPassword stores the hash of a fresh reset token and mails the raw token.
// If the mail cannot be sent the pending token is withdrawn again.
func (srv *userService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.NewValidationError(map[string]string{"email": "is required"})
	}

	rawToken, err := util.RandomHex(resetTokenBytes)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}
	tokenHash := util.SHA256Hex(rawToken)
	expiresAt := srv.now().Add(srv.resetTTL)

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByEmailForUpdate(ctx, email)
		if err != nil {
			return userNotFound(err)
		}

		user.PasswordResetTokenHash = tokenHash
		user.PasswordResetExpiresAt = &expiresAt

		return userRepo.SavePasswordReset(ctx, user)
	})
	if err != nil {
		return err
	}

	body := "Forgot your password? Submit a PATCH request with your new password and confirmPassword to: " +
		resetPasswordPath + rawToken + "\nIf you didn't forget your password, please ignore this e-mail."

	// Mail goes out after commit so a slow transport never holds the row lock.
	if sendErr := srv.notifier.Send(ctx, user.Email, fmt.Sprintf(resetMailSubject, util.FormatDuration(srv.resetTTL)), body); sendErr != nil {
		srv.log(ctx).Error("Failed to send password reset mail",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", sendErr),
		)

		if err := srv.withdrawResetToken(ctx, user.ID, tokenHash); err != nil {
			srv.log(ctx).Error("Failed to withdraw reset token",
				slog.String("user_id", user.ID.String()),
				slog.Any("error", err),
			)
		} else {
			user.ClearPasswordReset()
		}

		return domainerrors.ErrNotificationFailed.WrapMessage(sendErr.Error())
	}

	srv.log(ctx).Info("Password reset token sent", slog.String("user_id", user.ID.String()))

	return nil
}

// withdrawResetToken clears the pending reset only while it is still the one that failed to send.
func (srv *userService) withdrawResetToken(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	return srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return userNotFound(err)
		}
		if user.PasswordResetTokenHash != tokenHash {
			return nil
		}

		user.ClearPasswordReset()

		return userRepo.SavePasswordReset(ctx, user)
	})
}

// ResetPassword swaps the password of the account holding the reset token.
// The token row is locked, so a token can be redeemed once.
func (srv *userService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (*usecase.AuthOutput, error) {
	fields := validation.Fields{}
	srv.checkNewPassword(fields, input.Password, input.ConfirmPassword)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	if input.Token == "" {
		return nil, domainerrors.ErrResetTokenInvalid
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByResetTokenHashForUpdate(ctx, util.SHA256Hex(input.Token))
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find reset token")
		}

		now := srv.now()
		if user.PasswordResetExpiresAt == nil || !now.Before(*user.PasswordResetExpiresAt) {
			return domainerrors.ErrResetTokenExpired
		}

		return srv.replacePassword(ctx, userRepo, user, input.Password, now)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password reset", slog.String("user_id", user.ID.String()))

	return srv.issue(user)
}

// ChangePassword rotates the password of a logged-in user after checking the current one.
func (srv *userService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) (*usecase.AuthOutput, error) {
	fields := validation.Fields{}
	if input.CurrentPassword == "" {
		fields.Add("currentPassword", "is required")
	}
	srv.checkNewPassword(fields, input.Password, input.ConfirmPassword)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByIDForUpdate(ctx, input.UserID)
		if err != nil {
			return userNotFound(err)
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("current password is wrong")
		}

		return srv.replacePassword(ctx, userRepo, user, input.Password, srv.now())
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password changed", slog.String("user_id", user.ID.String()))

	return srv.issue(user)
}

func (srv *userService) replacePassword(ctx context.Context, userRepo repository.UserRepository, user *entity.User, password string, now time.Time) error {
	hash, err := srv.hash(password)
	if err != nil {
		return err
	}

	user.SetPassword(hash, now)
	user.Session = entity.SessionAuthenticated

	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	return nil
}

// Reactivate re-enables a deactivated account and logs it in.
func (srv *userService) Reactivate(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.UserRepo()

		var err error
		user, err = srv.verifyCredentials(ctx, userRepo, input)
		if err != nil {
			return err
		}
		if user.IsActive {
			return domainerrors.ErrAccountAlreadyActive
		}

		user.IsActive = true
		user.Session = entity.SessionAuthenticated

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account reactivated", slog.String("user_id", user.ID.String()))

	return srv.issue(user)
}
