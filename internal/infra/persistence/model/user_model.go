package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email                  string         `gorm:"type:varchar(255);unique;not null"`
	Name                   string         `gorm:"type:varchar(100);not null"`
	PasswordHash           string         `gorm:"type:varchar(255);not null"`
	Role                   string         `gorm:"type:varchar(16);not null;default:user"`
	IsActive               bool           `gorm:"not null;default:true"`
	Session                string         `gorm:"type:varchar(32);not null;default:Authenticated"`
	ChangedPasswordAt      *time.Time
	PasswordResetTokenHash *string        `gorm:"type:varchar(64);index"`
	PasswordResetExpiresAt *time.Time
	CurrentBorrowedBookID  *uuid.UUID     `gorm:"type:uuid"`
	CurrentLoanID          *uuid.UUID     `gorm:"type:uuid"`
	LoanIDs                pq.StringArray `gorm:"type:uuid[];not null;default:'{}'"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
