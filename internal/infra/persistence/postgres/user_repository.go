// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// Columns written by Update. Loan pointers and history are owned by SaveLoanState.
var userProfileColumns = []string{
	"email", "name", "password_hash", "role", "is_active", "session",
	"changed_password_at", "password_reset_token_hash", "password_reset_expires_at", "updated_at",
}

var userLoanColumns = []string{
	"current_borrowed_book_id", "current_loan_id", "loan_ids", "updated_at",
}

var userResetColumns = []string{
	"password_reset_token_hash", "password_reset_expires_at", "updated_at",
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
// Reads go to the primary so a password change is seen by the very next request.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByIDForUpdate retrieves a user with SELECT ... FOR UPDATE.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to lock user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmailForUpdate retrieves a user by e-mail with SELECT ... FOR UPDATE.
func (repo *userRepository) FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error) {
	return repo.lockOne(ctx, "email = ?", email, "failed to lock user by email")
}

// FindByResetTokenHashForUpdate locks the user holding the reset token hash.
// A concurrent reset that already cleared the hash makes the row stop matching once the lock is granted.
func (repo *userRepository) FindByResetTokenHashForUpdate(ctx context.Context, tokenHash string) (*entity.User, error) {
	if tokenHash == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.lockOne(ctx, "password_reset_token_hash = ?", tokenHash, "failed to lock user by reset token")
}

func (repo *userRepository) lockOne(ctx context.Context, cond string, arg any, msg string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where(cond, arg).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toUserDomain(&userM), nil
}

// FindActive lists active accounts, oldest first.
func (repo *userRepository) FindActive(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes profile, credential, session and status columns.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select(userProfileColumns).
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// SaveLoanState writes the active loan pointers and loan history.
func (repo *userRepository) SaveLoanState(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select(userLoanColumns).
		Updates(userM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save user loan state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// SavePasswordReset writes the pending reset token columns only.
func (repo *userRepository) SavePasswordReset(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select(userResetColumns).
		Updates(userM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save password reset")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	loanIDs := make([]uuid.UUID, 0, len(data.LoanIDs))
	for _, raw := range data.LoanIDs {
		if id, err := uuid.Parse(raw); err == nil {
			loanIDs = append(loanIDs, id)
		}
	}

	user := &entity.User{
		ID:                     data.ID,
		Email:                  data.Email,
		Name:                   data.Name,
		PasswordHash:           data.PasswordHash,
		Role:                   entity.Role(data.Role),
		IsActive:               data.IsActive,
		Session:                entity.SessionState(data.Session),
		ChangedPasswordAt:      data.ChangedPasswordAt,
		PasswordResetExpiresAt: data.PasswordResetExpiresAt,
		CurrentBorrowedBookID:  data.CurrentBorrowedBookID,
		CurrentLoanID:          data.CurrentLoanID,
		LoanIDs:                loanIDs,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
	if data.PasswordResetTokenHash != nil {
		user.PasswordResetTokenHash = *data.PasswordResetTokenHash
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	loanIDs := make(pq.StringArray, 0, len(data.LoanIDs))
	for _, id := range data.LoanIDs {
		loanIDs = append(loanIDs, id.String())
	}

	userM := &model.UserModel{
		ID:                     data.ID,
		Email:                  data.Email,
		Name:                   data.Name,
		PasswordHash:           data.PasswordHash,
		Role:                   data.Role.String(),
		IsActive:               data.IsActive,
		Session:                string(data.Session),
		ChangedPasswordAt:      data.ChangedPasswordAt,
		PasswordResetExpiresAt: data.PasswordResetExpiresAt,
		CurrentBorrowedBookID:  data.CurrentBorrowedBookID,
		CurrentLoanID:          data.CurrentLoanID,
		LoanIDs:                loanIDs,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
	if data.PasswordResetTokenHash != "" {
		hash := data.PasswordResetTokenHash
		userM.PasswordResetTokenHash = &hash
	}

	return userM
}
