package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/book/model"
)

const bookColumns = `id, title, author, isbn, price, image, published_date, created_at, updated_at`

// postgresRepository - raw SQL with pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) BookRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bookColumns+` FROM books`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	bookID, err := parseBookID(id)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, bookID)

	book, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (r *postgresRepository) Insert(ctx context.Context, book *model.Book) (*model.Book, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO books (title, author, isbn, price, image, published_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+bookColumns,
		book.Title, book.Author, book.ISBN, book.Price, book.Image, book.PublishedDate,
	)

	inserted, err := scanBook(row)
	if err != nil {
		return nil, translateWriteError(err)
	}

	return inserted, nil
}

func (r *postgresRepository) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE books
		SET title = $2, author = $3, isbn = $4, price = $5, image = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+bookColumns,
		book.ID, book.Title, book.Author, book.ISBN, book.Price, book.Image,
	)

	updated, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, translateWriteError(err)
	}

	return updated, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id string) error {
	bookID, err := parseBookID(id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func parseBookID(id string) (uuid.UUID, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, model.ErrInvalidBookID
	}
	return bookID, nil
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var book model.Book
	err := row.Scan(
		&book.ID, &book.Title, &book.Author, &book.ISBN, &book.Price,
		&book.Image, &book.PublishedDate, &book.CreatedAt, &book.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}
	return &book, nil
}

// translateWriteError maps Postgres constraint violations onto domain
// errors so callers never see SQLSTATE codes.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation, only the isbn index exists
			return model.ErrISBNAlreadyExists
		case "23502", "23514": // not_null_violation, check_violation
			return fmt.Errorf("%w: %s", model.ErrValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("failed to write book: %w", err)
}
