package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/config"
	bookHandler "bookcatalog-backend/internal/domains/book/handler"
	bookRepo "bookcatalog-backend/internal/domains/book/repository"
	bookService "bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/infrastructure/database"
	"bookcatalog-backend/internal/infrastructure/storage"
)

// Container holds the application's dependency graph. Initialization
// order: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Storage *storage.LocalStorage

	BookRepo    bookRepo.BookRepository
	BookService bookService.ServiceInterface
	BookHandler *bookHandler.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// The database connection is attempted once with a short timeout;
	// a failure here takes the process down.
	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.Storage, err = storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}

	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Storage)
	c.BookHandler = bookHandler.NewHandler(c.BookService)

	log.Info().Str("upload_dir", c.Storage.Dir()).Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
