package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is the single persisted entity of the catalog.
type Book struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Title         string          `json:"title" db:"title"`
	Author        string          `json:"author" db:"author"`
	ISBN          string          `json:"isbn" db:"isbn"`
	Price         decimal.Decimal `json:"price" db:"price"`
	Image         *string         `json:"image" db:"image"`
	PublishedDate time.Time       `json:"publishedDate" db:"published_date"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// ImageUpload carries the bytes of a cover image extracted from a
// multipart request, before the image store has assigned it a name.
type ImageUpload struct {
	Data     []byte
	Filename string
}
