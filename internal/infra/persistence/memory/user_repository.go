package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"lending/internal/domain/entity"
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	run runner
}

// NewUserRepository returns a repository whose calls each run as their own transaction.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{run: store.run}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := repo.run(ctx, func(t *txn) error {
		u, ok := t.userTable(false)[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(u)

		return nil
	})

	return found, err
}

func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.FindByID(ctx, id)
}

func (repo *userRepository) FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, func(u *entity.User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

func (repo *userRepository) FindByResetTokenHashForUpdate(ctx context.Context, tokenHash string) (*entity.User, error) {
	if tokenHash == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, func(u *entity.User) bool {
		return u.PasswordResetTokenHash == tokenHash
	})
}

func (repo *userRepository) findOne(ctx context.Context, match func(u *entity.User) bool) (*entity.User, error) {
	var found *entity.User
	err := repo.run(ctx, func(t *txn) error {
		for _, u := range t.userTable(false) {
			if match(&u) {
				found = cloneUser(u)

				return nil
			}
		}

		return repository.ErrUserNotFound
	})

	return found, err
}

func (repo *userRepository) FindActive(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := repo.run(ctx, func(t *txn) error {
		users = make([]*entity.User, 0, len(t.userTable(false)))
		for _, u := range t.userTable(false) {
			if u.IsActive {
				users = append(users, cloneUser(u))
			}
		}

		return nil
	})
	slices.SortFunc(users, func(a, b *entity.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return users, err
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	return repo.run(ctx, func(t *txn) error {
		table := t.userTable(true)
		for _, existing := range table {
			if strings.EqualFold(existing.Email, user.Email) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
			}
		}

		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		now := t.store.now()
		user.CreatedAt = now
		user.UpdatedAt = now
		table[user.ID] = *cloneUser(*user)

		return nil
	})
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	return repo.run(ctx, func(t *txn) error {
		table := t.userTable(true)
		stored, ok := table[user.ID]
		if !ok {
			return repository.ErrUserNotFound
		}
		for id, existing := range table {
			if id != user.ID && strings.EqualFold(existing.Email, user.Email) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
			}
		}

		next := cloneUser(*user)
		next.CurrentBorrowedBookID = stored.CurrentBorrowedBookID
		next.CurrentLoanID = stored.CurrentLoanID
		next.LoanIDs = stored.LoanIDs
		next.CreatedAt = stored.CreatedAt
		next.UpdatedAt = t.store.now()
		table[user.ID] = *next
		user.UpdatedAt = next.UpdatedAt

		return nil
	})
}

func (repo *userRepository) SaveLoanState(ctx context.Context, user *entity.User) error {
	return repo.run(ctx, func(t *txn) error {
		table := t.userTable(true)
		stored, ok := table[user.ID]
		if !ok {
			return repository.ErrUserNotFound
		}

		src := cloneUser(*user)
		stored.CurrentBorrowedBookID = src.CurrentBorrowedBookID
		stored.CurrentLoanID = src.CurrentLoanID
		stored.LoanIDs = src.LoanIDs
		stored.UpdatedAt = t.store.now()
		table[user.ID] = stored
		user.UpdatedAt = stored.UpdatedAt

		return nil
	})
}

func (repo *userRepository) SavePasswordReset(ctx context.Context, user *entity.User) error {
	return repo.run(ctx, func(t *txn) error {
		table := t.userTable(true)
		stored, ok := table[user.ID]
		if !ok {
			return repository.ErrUserNotFound
		}

		stored.PasswordResetTokenHash = user.PasswordResetTokenHash
		stored.PasswordResetExpiresAt = nil
		if user.PasswordResetExpiresAt != nil {
			expiresAt := *user.PasswordResetExpiresAt
			stored.PasswordResetExpiresAt = &expiresAt
		}
		stored.UpdatedAt = t.store.now()
		table[user.ID] = stored
		user.UpdatedAt = stored.UpdatedAt

		return nil
	})
}
