package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoanPeriod is how long a borrower may keep a book.
const LoanPeriod = 7 * 24 * time.Hour

// Loan records one book lent to one borrower. BookTitle is a snapshot taken when the loan opens.
type Loan struct {
	ID              uuid.UUID  `json:"id"`
	BorrowerID      uuid.UUID  `json:"borrowerId"`
	BookID          uuid.UUID  `json:"bookId"`
	BookTitle       string     `json:"bookTitle"`
	HasBeenReturned bool       `json:"hasBeenReturned"`
	RentalDate      time.Time  `json:"rentalDate"`
	ReturnDate      time.Time  `json:"returnDate"`
	RetrieveDate    *time.Time `json:"retrieveDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// IsOpen reports whether the book is still out.
func (l *Loan) IsOpen() bool {
	return !l.HasBeenReturned
}

// Checkout opens a loan of book for borrower. It takes one copy off the shelf and
// points the borrower at the loan; callers persist all three inside one transaction.
func Checkout(book *Book, borrower *User, now time.Time) *Loan {
	loan := &Loan{
		ID:         uuid.New(),
		BorrowerID: borrower.ID,
		BookID:     book.ID,
		BookTitle:  book.Title,
		RentalDate: now,
		ReturnDate: now.Add(LoanPeriod),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	book.NumberOfCopies--
	borrower.startLoan(loan)

	return loan
}

// CheckIn closes the loan, puts the copy back and releases the borrower.
func CheckIn(loan *Loan, book *Book, borrower *User, now time.Time) {
	loan.HasBeenReturned = true
	loan.RetrieveDate = &now
	loan.UpdatedAt = now

	book.NumberOfCopies++
	borrower.endLoan()
}
