package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/shared/middleware"
	"bookcatalog/internal/shared/response"
	"bookcatalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/stats", c.ReportHandler.Stats)

		setupAuthRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupUtilityRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/search", c.AuthorHandler.Search)
		authors.GET("/top", c.AuthorHandler.Top)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		authors.GET("/:id/books", c.AuthorHandler.Books)
		authors.GET("/:id/summary", c.AuthorHandler.Summary)
		authors.GET("/:id/statistics", c.AuthorHandler.Statistics)

		// Bulk import and export require a valid token
		protected := authors.Group("")
		protected.Use(middleware.AuthMiddleware(c.Config.Auth.JWTSecret))
		{
			protected.POST("/bulk", c.AuthorHandler.BulkCreate)
			protected.GET("/export/csv", c.ReportHandler.ExportAuthorsCSV)
		}
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.Create)
		books.GET("", c.BookHandler.GetAll)
		books.GET("/search", c.BookHandler.Search)
		books.GET("/price-range", c.BookHandler.PriceRange)
		books.GET("/recent", c.BookHandler.Recent)
		books.GET("/sorted-by-price", c.BookHandler.SortedByPrice)
		books.GET("/count", c.BookHandler.Count)
		books.GET("/export/csv", c.ReportHandler.ExportBooksCSV)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.POST("", c.CategoryHandler.Create)
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
		categories.GET("/:id/books", c.CategoryHandler.Books)
	}
}

// ========================================
// UTILITY ROUTES
// ========================================
func setupUtilityRoutes(v1 *gin.RouterGroup, c *container.Container) {
	utility := v1.Group("/utility")
	{
		utility.GET("/books/details", c.ReportHandler.BookDetails)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, "Service is healthy", gin.H{
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"time":        time.Now().UTC().Format(time.RFC3339),
		})
	}
}
