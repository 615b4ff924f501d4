package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog title together with the number of copies currently on the shelf.
type Book struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Genre           string     `json:"genre"`
	Author          string     `json:"author"`
	Synopsis        string     `json:"synopsis"`
	NumberOfPages   int        `json:"numberOfPages"`
	Language        string     `json:"language"`
	Publisher       string     `json:"publisher"`
	PublicationDate *time.Time `json:"publicationDate,omitempty"`
	NumberOfCopies  int        `json:"numberOfCopies"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// HasCopies reports whether at least one copy can be lent.
func (b *Book) HasCopies() bool {
	return b.NumberOfCopies > 0
}
