package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookForm_ValidateCreate(t *testing.T) {
	valid := BookForm{Title: "A", Author: "B", ISBN: "123", Price: "9.99"}

	t.Run("valid form", func(t *testing.T) {
		assert.NoError(t, valid.ValidateCreate())
	})

	t.Run("price is optional", func(t *testing.T) {
		form := valid
		form.Price = ""
		assert.NoError(t, form.ValidateCreate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			form BookForm
		}{
			{"title", BookForm{Author: "B", ISBN: "123"}},
			{"author", BookForm{Title: "A", ISBN: "123"}},
			{"isbn", BookForm{Title: "A", Author: "B"}},
		} {
			err := tc.form.ValidateCreate()
			require.Error(t, err, tc.name)
			assert.Contains(t, err.Error(), tc.name)
		}
	})

	t.Run("non-numeric price", func(t *testing.T) {
		form := valid
		form.Price = "free"
		assert.Error(t, form.ValidateCreate())
	})
}

func TestBookForm_ValidateUpdate(t *testing.T) {
	assert.NoError(t, BookForm{}.ValidateUpdate())
	assert.NoError(t, BookForm{Price: "12.50"}.ValidateUpdate())
	assert.Error(t, BookForm{Price: "twelve"}.ValidateUpdate())
}

func TestBookForm_ApplyTo(t *testing.T) {
	base := func() *Book {
		return &Book{
			Title:  "Old Title",
			Author: "Old Author",
			ISBN:   "old-isbn",
			Price:  decimal.NewFromInt(42),
		}
	}

	t.Run("supplied fields overwrite", func(t *testing.T) {
		b := base()
		BookForm{Title: "New", Price: "9.99"}.ApplyTo(b)

		assert.Equal(t, "New", b.Title)
		assert.Equal(t, "Old Author", b.Author)
		assert.True(t, b.Price.Equal(decimal.RequireFromString("9.99")))
	})

	t.Run("empty fields keep old values", func(t *testing.T) {
		b := base()
		BookForm{}.ApplyTo(b)

		assert.Equal(t, "Old Title", b.Title)
		assert.Equal(t, "Old Author", b.Author)
		assert.Equal(t, "old-isbn", b.ISBN)
		assert.True(t, b.Price.Equal(decimal.NewFromInt(42)))
	})

	t.Run("zero price keeps old value", func(t *testing.T) {
		// Falsy-means-unchanged is the documented update behavior.
		b := base()
		BookForm{Price: "0"}.ApplyTo(b)

		assert.True(t, b.Price.Equal(decimal.NewFromInt(42)))
	})
}
