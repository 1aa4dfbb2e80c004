package container

import (
	"fmt"
	"time"

	"bookcatalog/internal/config"
	"bookcatalog/internal/storage/docstore"
	"bookcatalog/pkg/jwt"
	"bookcatalog/pkg/logger"

	authHandler "bookcatalog/internal/domains/auth/handler"
	authService "bookcatalog/internal/domains/auth/service"
	authorHandler "bookcatalog/internal/domains/author/handler"
	authorModel "bookcatalog/internal/domains/author/model"
	authorRepo "bookcatalog/internal/domains/author/repository"
	authorService "bookcatalog/internal/domains/author/service"
	bookHandler "bookcatalog/internal/domains/book/handler"
	bookModel "bookcatalog/internal/domains/book/model"
	bookRepo "bookcatalog/internal/domains/book/repository"
	bookService "bookcatalog/internal/domains/book/service"
	categoryHandler "bookcatalog/internal/domains/category/handler"
	categoryModel "bookcatalog/internal/domains/category/model"
	categoryRepo "bookcatalog/internal/domains/category/repository"
	categoryService "bookcatalog/internal/domains/category/service"
	reportHandler "bookcatalog/internal/domains/report/handler"
	reportService "bookcatalog/internal/domains/report/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root of
// the dependency graph. All fields are singletons for the process lifetime.
type Container struct {
	Config     *config.Config
	JWTManager *jwt.Manager

	// Repository layer
	AuthorRepo   authorRepo.RepositoryInterface
	BookRepo     bookRepo.RepositoryInterface
	CategoryRepo categoryRepo.RepositoryInterface

	// Service layer
	AuthorService   authorService.ServiceInterface
	BookService     bookService.ServiceInterface
	CategoryService categoryService.ServiceInterface
	ReportService   reportService.ServiceInterface
	AuthService     authService.ServiceInterface

	// Handler layer
	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	CategoryHandler *categoryHandler.CategoryHandler
	ReportHandler   *reportHandler.ReportHandler
	AuthHandler     *authHandler.AuthHandler
}

// NewContainer builds the whole dependency graph in order: config first,
// then storage, repositories, services, handlers. A failure at any step
// aborts startup.
func NewContainer() (*Container, error) {
	logger.Info("🔧 Initializing DI Container...", nil)

	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("✅ Config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// Step 2: storage (one JSON file per collection)
	authors, err := docstore.OpenCollection(cfg.Store.DataDir, "authors", func(a authorModel.Author) int64 { return a.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to open authors collection: %w", err)
	}
	books, err := docstore.OpenCollection(cfg.Store.DataDir, "books", func(b bookModel.Book) int64 { return b.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to open books collection: %w", err)
	}
	categories, err := docstore.OpenCollection(cfg.Store.DataDir, "categories", func(cat categoryModel.Category) int64 { return cat.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to open categories collection: %w", err)
	}
	logger.Info("✅ Collections opened", map[string]interface{}{
		"data_dir": cfg.Store.DataDir,
	})

	c.JWTManager = jwt.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiryMinute)*time.Minute)

	// Step 3: repositories
	c.AuthorRepo = authorRepo.NewDocstoreRepository(authors)
	c.BookRepo = bookRepo.NewDocstoreRepository(books)
	c.CategoryRepo = categoryRepo.NewDocstoreRepository(categories)

	// Step 4: services
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.CategoryRepo)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.BookRepo)
	c.ReportService = reportService.NewReportService(c.BookRepo, c.AuthorRepo, c.CategoryRepo)

	auth, err := authService.NewAuthService(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, c.JWTManager)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth service: %w", err)
	}
	c.AuthService = auth

	// Step 5: handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.ReportHandler = reportHandler.NewReportHandler(c.ReportService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)

	logger.Info("✅ DI Container ready", nil)
	return c, nil
}
