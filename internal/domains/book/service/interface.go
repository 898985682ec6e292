package service

import (
	"context"

	"bookcatalog-backend/internal/domains/book/model"
)

// ServiceInterface is the book orchestration layer consumed by handlers.
type ServiceInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (*model.Book, error)
	CreateBook(ctx context.Context, form model.BookForm, upload *model.ImageUpload) (*model.Book, error)
	UpdateBook(ctx context.Context, id string, form model.BookForm, upload *model.ImageUpload) (*model.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// ImageStorage is the slice of the image store the service needs. Save
// returns the public relative path of the stored file; Delete is
// best-effort and its error is only ever logged.
type ImageStorage interface {
	Save(data []byte, originalName string) (string, error)
	Delete(relPath string) error
}
