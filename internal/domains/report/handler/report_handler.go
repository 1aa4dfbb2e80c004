package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog/internal/domains/report/model"
	"bookcatalog/internal/domains/report/service"
	"bookcatalog/internal/shared/response"
)

// ReportHandler serves the cross-collection read views and CSV exports.
type ReportHandler struct {
	service service.ServiceInterface
}

func NewReportHandler(service service.ServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// BookDetails handles GET /utility/books/details
func (h *ReportHandler) BookDetails(c *gin.Context) {
	details, err := h.service.BookDetails(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book details retrieved successfully", details)
}

// Stats handles GET /stats
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Statistics retrieved successfully", stats)
}

// ExportBooksCSV handles GET /books/export/csv
func (h *ReportHandler) ExportBooksCSV(c *gin.Context) {
	details, err := h.service.ExportBooks(c.Request.Context())
	if err != nil {
		if errors.Is(err, model.ErrNothingToExport) {
			response.Success(c, http.StatusOK, "No books to export", nil)
			return
		}
		h.handleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="books_export.csv"`)
	if err := service.WriteBooksCSV(c.Writer, details); err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("csv export failed mid-stream")
	}
}

// ExportAuthorsCSV handles GET /authors/export/csv
func (h *ReportHandler) ExportAuthorsCSV(c *gin.Context) {
	rows, err := h.service.ExportAuthors(c.Request.Context())
	if err != nil {
		if errors.Is(err, model.ErrNothingToExport) {
			response.Success(c, http.StatusOK, "No authors to export", nil)
			return
		}
		h.handleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="authors_export.csv"`)
	if err := service.WriteAuthorsCSV(c.Writer, rows); err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("csv export failed mid-stream")
	}
}

func (h *ReportHandler) handleError(c *gin.Context, err error) {
	log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("report handler error")
	response.InternalServerError(c, "Internal server error")
}
