package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. number_of_copies carries a CHECK (>= 0).
type BookModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title           string    `gorm:"type:varchar(255);unique;not null"`
	Genre           string    `gorm:"type:varchar(100);not null"`
	Author          string    `gorm:"type:varchar(255);not null"`
	Synopsis        string    `gorm:"type:text;not null"`
	NumberOfPages   int       `gorm:"not null"`
	Language        string    `gorm:"type:varchar(64)"`
	Publisher       string    `gorm:"type:varchar(255)"`
	PublicationDate *time.Time
	NumberOfCopies  int `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
