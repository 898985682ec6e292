package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// BookForm holds the text fields of a multipart create/update request.
// All values arrive as strings; price is parsed on apply.
type BookForm struct {
	Title  string `form:"title"`
	Author string `form:"author"`
	ISBN   string `form:"isbn"`
	Price  string `form:"price"`
}

// ValidateCreate enforces the required fields of a new book. Price is
// optional and defaults to 0.
func (f BookForm) ValidateCreate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required.Error("title is required")),
		validation.Field(&f.Author, validation.Required.Error("author is required")),
		validation.Field(&f.ISBN, validation.Required.Error("isbn is required")),
		validation.Field(&f.Price, is.Float.Error("price must be a number")),
	)
}

// ValidateUpdate allows every field to be absent; only the price format
// is checked when one is supplied.
func (f BookForm) ValidateUpdate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Price, is.Float.Error("price must be a number")),
	)
}

// ApplyTo merges the form onto a book. Empty fields leave the existing
// value unchanged, and so does a price of 0: supplying a falsy value on
// update means "not provided". This permissiveness is intentional and
// documented, not strict PATCH semantics.
func (f BookForm) ApplyTo(b *Book) {
	if f.Title != "" {
		b.Title = f.Title
	}
	if f.Author != "" {
		b.Author = f.Author
	}
	if f.ISBN != "" {
		b.ISBN = f.ISBN
	}
	if f.Price != "" {
		if price, err := decimal.NewFromString(f.Price); err == nil && !price.IsZero() {
			b.Price = price
		}
	}
}
