package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/repository"
)

type bookService struct {
	repo    repository.BookRepository
	storage ImageStorage
}

func NewBookService(repo repository.BookRepository, storage ImageStorage) ServiceInterface {
	return &bookService{
		repo:    repo,
		storage: storage,
	}
}

func (s *bookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateBook validates the form, stores the optional cover image and
// inserts the record. If the insert fails after the image was written,
// the image is removed again so no orphan is left on disk.
func (s *bookService) CreateBook(ctx context.Context, form model.BookForm, upload *model.ImageUpload) (*model.Book, error) {
	if err := form.ValidateCreate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	book := &model.Book{
		Price:         decimal.Zero,
		PublishedDate: time.Now(),
	}
	form.ApplyTo(book)

	if upload != nil {
		path, err := s.storage.Save(upload.Data, upload.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to store cover image: %w", err)
		}
		book.Image = &path
	}

	created, err := s.repo.Insert(ctx, book)
	if err != nil {
		s.discardImage(book.Image)
		return nil, err
	}

	return created, nil
}

// UpdateBook merges the supplied fields onto the existing record. A new
// cover image is written first and compensated on every failure path; the
// old image is removed only after the updated record is saved.
func (s *bookService) UpdateBook(ctx context.Context, id string, form model.BookForm, upload *model.ImageUpload) (*model.Book, error) {
	if err := form.ValidateUpdate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	var newImage *string
	if upload != nil {
		path, err := s.storage.Save(upload.Data, upload.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to store cover image: %w", err)
		}
		newImage = &path
	}

	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.discardImage(newImage)
		return nil, err
	}

	oldImage := book.Image
	form.ApplyTo(book)
	if newImage != nil {
		book.Image = newImage
	}

	updated, err := s.repo.Update(ctx, book)
	if err != nil {
		s.discardImage(newImage)
		return nil, err
	}

	// The new image is attached; the superseded one can go.
	if newImage != nil && oldImage != nil {
		s.discardImage(oldImage)
	}

	return updated, nil
}

// DeleteBook removes the record and, best-effort, its cover image.
func (s *bookService) DeleteBook(ctx context.Context, id string) error {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.discardImage(book.Image)

	return s.repo.DeleteByID(ctx, id)
}

// discardImage deletes an image file, logging any failure. Image cleanup
// never blocks or fails the primary operation.
func (s *bookService) discardImage(relPath *string) {
	if relPath == nil || *relPath == "" {
		return
	}
	if err := s.storage.Delete(*relPath); err != nil {
		log.Error().Err(err).Str("path", *relPath).Msg("image cleanup failed")
	}
}
