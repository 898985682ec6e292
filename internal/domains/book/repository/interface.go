package repository

import (
	"context"

	"bookcatalog-backend/internal/domains/book/model"
)

// BookRepository is the persistence boundary for books. Implementations
// translate store failures into domain errors (ErrBookNotFound,
// ErrInvalidBookID, ErrISBNAlreadyExists) instead of leaking driver errors.
type BookRepository interface {
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id string) (*model.Book, error)
	Insert(ctx context.Context, book *model.Book) (*model.Book, error)
	Update(ctx context.Context, book *model.Book) (*model.Book, error)
	DeleteByID(ctx context.Context, id string) error
}
