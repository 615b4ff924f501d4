package model

import (
	"time"

	"github.com/google/uuid"
)

// LoanModel mirrors the 'loans' table.
type LoanModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BorrowerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BookID          uuid.UUID `gorm:"type:uuid;not null;index"`
	BookTitle       string    `gorm:"type:varchar(255);not null"`
	HasBeenReturned bool      `gorm:"not null;default:false"`
	RentalDate      time.Time `gorm:"not null"`
	ReturnDate      time.Time `gorm:"not null"`
	RetrieveDate    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoanModel) TableName() string {
	return "loans"
}
