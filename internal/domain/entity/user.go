// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in and borrow at most one book at a time.
type User struct {
	ID                     uuid.UUID    `json:"id"`
	Email                  string       `json:"email"`
	Name                   string       `json:"name"`
	PasswordHash           string       `json:"-"`
	Role                   Role         `json:"role"`
	IsActive               bool         `json:"isActive"`
	Session                SessionState `json:"session"`
	ChangedPasswordAt      *time.Time   `json:"-"`
	PasswordResetTokenHash string       `json:"-"`
	PasswordResetExpiresAt *time.Time   `json:"-"`
	CurrentBorrowedBookID  *uuid.UUID   `json:"currentBorrowedBookId"`
	CurrentLoanID          *uuid.UUID   `json:"currentLoanId"`
	LoanIDs                []uuid.UUID  `json:"loanIds"`
	CreatedAt              time.Time    `json:"createdAt"`
	UpdatedAt              time.Time    `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasActiveLoan reports whether the user currently holds a book.
func (u *User) HasActiveLoan() bool {
	return u.CurrentBorrowedBookID != nil
}

// PasswordChangedAfter reports whether the password changed after a token was issued.
// Token iat is truncated to the second, so any token from an earlier second is stale
// and only tokens from the very second of the change still pass.
func (u *User) PasswordChangedAfter(issuedAt time.Time) bool {
	if u.ChangedPasswordAt == nil {
		return false
	}

	return issuedAt.Unix() < u.ChangedPasswordAt.Unix()
}

// CanAuthenticate reports whether requests bearing a token for this user may proceed.
func (u *User) CanAuthenticate() bool {
	return u.IsActive && u.Session != SessionUnauthenticated
}

// startLoan points the user at a freshly opened loan and records it in the history.
func (u *User) startLoan(loan *Loan) {
	bookID := loan.BookID
	loanID := loan.ID
	u.CurrentBorrowedBookID = &bookID
	u.CurrentLoanID = &loanID
	u.LoanIDs = append(u.LoanIDs, loan.ID)
}

// endLoan clears the active loan pointers; history is kept.
func (u *User) endLoan() {
	u.CurrentBorrowedBookID = nil
	u.CurrentLoanID = nil
}

// ClearPasswordReset drops any pending reset token.
func (u *User) ClearPasswordReset() {
	u.PasswordResetTokenHash = ""
	u.PasswordResetExpiresAt = nil
}

// SetPassword stores a new hash and marks earlier tokens stale.
func (u *User) SetPassword(hash string, now time.Time) {
	changedAt := now
	u.PasswordHash = hash
	u.ChangedPasswordAt = &changedAt
	u.ClearPasswordReset()
}
