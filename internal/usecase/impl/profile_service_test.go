package impl

import (
	"context"
	"testing"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	mockRepo "lending/internal/mocks/repository"
	"lending/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func (fx profileServiceFixtures) withTxUserRepo(t *testing.T, ctx context.Context) *mockRepo.MockUserRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTx(ctx, fx.txManager, factory)

	return txUserRepo
}

func TestProfileService_GetMe(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	expected := &entity.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}

	fx.userRepo.EXPECT().FindByID(ctx, expected.ID).Return(expected, nil)

	user, err := fx.service.GetMe(ctx, expected.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestProfileService_GetByID_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetByID(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateMe_ChangesNameAndEmailOnly(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	bookID := uuid.New()
	existing := &entity.User{
		ID:                    uuid.New(),
		Name:                  "Ada",
		Email:                 "ada@example.com",
		PasswordHash:          "hashed",
		Role:                  entity.RoleUser,
		CurrentBorrowedBookID: &bookID,
	}

	txUserRepo := fx.withTxUserRepo(t, ctx)
	txUserRepo.EXPECT().FindByIDForUpdate(ctx, existing.ID).Return(existing, nil)
	txUserRepo.EXPECT().Update(ctx, existing).Return(nil)

	name := " Ada Lovelace "
	email := "ADA.L@example.com"
	user, err := fx.service.UpdateMe(ctx, existing.ID, usecase.UpdateProfileInput{Name: &name, Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada.l@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, &bookID, user.CurrentBorrowedBookID)
}

func TestProfileService_UpdateMe_Validation(t *testing.T) {
	fx := createTestProfileService(t)
	blank := "  "
	bad := "not-an-email"

	_, err := fx.service.UpdateMe(context.Background(), uuid.New(), usecase.UpdateProfileInput{Name: &blank, Email: &bad})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "name")
	assert.Contains(t, validationErr.Fields(), "email")
}

func TestProfileService_Deactivate(t *testing.T) {
	bookID := uuid.New()

	tests := []struct {
		name       string
		user       *entity.User
		wantErr    error
		wantUpdate bool
	}{
		{
			name:       "active without a book",
			user:       &entity.User{ID: uuid.New(), IsActive: true},
			wantUpdate: true,
		},
		{
			name:    "still holding a book",
			user:    &entity.User{ID: uuid.New(), IsActive: true, CurrentBorrowedBookID: &bookID},
			wantErr: domainerrors.ErrUserHoldsBook,
		},
		{
			name: "already inactive",
			user: &entity.User{ID: uuid.New(), IsActive: false},
		},
	}

	for _, tt := range tests {
		for _, byAdmin := range []bool{false, true} {
			t.Run(tt.name, func(t *testing.T) {
				fx := createTestProfileService(t)
				ctx := context.Background()
				user := *tt.user

				txUserRepo := fx.withTxUserRepo(t, ctx)
				txUserRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(&user, nil)
				if tt.wantUpdate {
					txUserRepo.EXPECT().Update(ctx, &user).Return(nil)
				}

				var err error
				if byAdmin {
					err = fx.service.DeactivateByID(ctx, user.ID)
				} else {
					err = fx.service.DeactivateMe(ctx, user.ID)
				}

				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
					assert.True(t, user.IsActive)

					return
				}
				require.NoError(t, err)
				assert.False(t, user.IsActive)
			})
		}
	}
}

func TestProfileService_ListActive_EmptyIsNotNil(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindActive(ctx).Return(nil, nil)

	users, err := fx.service.ListActive(ctx)

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
