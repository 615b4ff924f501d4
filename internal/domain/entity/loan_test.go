package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutAndCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	book := &Book{ID: uuid.New(), Title: "Dune", NumberOfCopies: 2}
	borrower := &User{ID: uuid.New(), Role: RoleUser, IsActive: true}

	loan := Checkout(book, borrower, now)

	assert.Equal(t, 1, book.NumberOfCopies)
	assert.Equal(t, "Dune", loan.BookTitle)
	assert.Equal(t, now.Add(7*24*time.Hour), loan.ReturnDate)
	assert.True(t, loan.IsOpen())
	require.NotNil(t, borrower.CurrentBorrowedBookID)
	require.NotNil(t, borrower.CurrentLoanID)
	assert.Equal(t, book.ID, *borrower.CurrentBorrowedBookID)
	assert.Equal(t, loan.ID, *borrower.CurrentLoanID)
	assert.Equal(t, []uuid.UUID{loan.ID}, borrower.LoanIDs)

	book.Title = "Dune (annotated)"
	assert.Equal(t, "Dune", loan.BookTitle)

	later := now.Add(48 * time.Hour)
	CheckIn(loan, book, borrower, later)

	assert.Equal(t, 2, book.NumberOfCopies)
	assert.False(t, loan.IsOpen())
	require.NotNil(t, loan.RetrieveDate)
	assert.Equal(t, later, *loan.RetrieveDate)
	assert.False(t, borrower.HasActiveLoan())
	assert.Nil(t, borrower.CurrentLoanID)
	assert.Len(t, borrower.LoanIDs, 1)
}

func TestUser_PasswordChangedAfter(t *testing.T) {
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	user := &User{}

	assert.False(t, user.PasswordChangedAfter(issued))

	user.SetPassword("hash", issued.Add(time.Minute))
	assert.True(t, user.PasswordChangedAfter(issued))

	// a token minted in the same second as the change stays valid
	changeTime := issued.Add(time.Hour)
	user.SetPassword("hash2", changeTime)
	assert.False(t, user.PasswordChangedAfter(changeTime))
	assert.False(t, user.PasswordChangedAfter(changeTime.Add(time.Second)))

	// a token from the previous second is stale even when issued a moment before the change
	changeTime = issued.Add(2*time.Hour + 200*time.Millisecond)
	user.SetPassword("hash3", changeTime)
	assert.True(t, user.PasswordChangedAfter(changeTime.Add(-300*time.Millisecond).Truncate(time.Second)))
	assert.True(t, user.PasswordChangedAfter(changeTime.Add(-1500*time.Millisecond).Truncate(time.Second)))
}

func TestUser_CanAuthenticate(t *testing.T) {
	user := &User{IsActive: true, Session: SessionAuthenticated}
	assert.True(t, user.CanAuthenticate())

	user.Session = SessionUnauthenticated
	assert.False(t, user.CanAuthenticate())

	user.Session = SessionAuthenticated
	user.IsActive = false
	assert.False(t, user.CanAuthenticate())
}
