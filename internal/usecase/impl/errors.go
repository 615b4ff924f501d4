package impl

import (
	domainerrors "lending/internal/domain/errors"
	"lending/internal/domain/repository"
	"lending/internal/errors"
)

// notFound converts a repository miss into its catalogue error and wraps anything else.
func notFound(err, sentinel error, appErr *domainerrors.BaseError, action string) error {
	if errors.Is(err, sentinel) {
		return appErr
	}

	return errors.Wrap(err, action)
}

func userNotFound(err error) error {
	return notFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to load user")
}

func bookNotFound(err error) error {
	return notFound(err, repository.ErrBookNotFound, domainerrors.ErrBookNotFound, "failed to load book")
}

func loanNotFound(err error) error {
	return notFound(err, repository.ErrLoanNotFound, domainerrors.ErrLoanNotFound, "failed to load loan")
}
