package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/domains/book/service"
	"bookcatalog/internal/shared/response"
)

// BookHandler translates HTTP requests into book service calls.
type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(service service.ServiceInterface) *BookHandler {
	return &BookHandler{service: service}
}

// ========================================
// CRUD ENDPOINTS
// ========================================

// Create handles POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	book, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", book.ToResponse())
}

// GetAll handles GET /books
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", model.ToResponses(books))
}

// GetByID handles GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", book.ToResponse())
}

// Update handles PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CreateBookRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", book.ToResponse())
}

// Delete handles DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book deleted successfully", nil)
}

// ========================================
// QUERY ENDPOINTS
// ========================================

// Search handles GET /books/search?title=
func (h *BookHandler) Search(c *gin.Context) {
	title := c.Query("title")

	books, err := h.service.Search(c.Request.Context(), title)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", model.ToResponses(books))
}

// PriceRange handles GET /books/price-range?min_price=&max_price=
// Both bounds are required; a silently defaulted bound would turn a typo
// into an empty (or inverted) range.
func (h *BookHandler) PriceRange(c *gin.Context) {
	minRaw, maxRaw := c.Query("min_price"), c.Query("max_price")
	if minRaw == "" || maxRaw == "" {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_PRICE", "min_price and max_price are required")
		return
	}

	min, err := strconv.ParseFloat(minRaw, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_PRICE", "min_price must be a number")
		return
	}
	max, err := strconv.ParseFloat(maxRaw, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_PRICE", "max_price must be a number")
		return
	}

	books, err := h.service.PriceRange(c.Request.Context(), min, max)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", model.ToResponses(books))
}

// Recent handles GET /books/recent?days=
func (h *BookHandler) Recent(c *gin.Context) {
	days := 365
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.ErrorResponse(c, http.StatusBadRequest, "INVALID_WINDOW", "days must be an integer")
			return
		}
		days = parsed
	}

	books, err := h.service.Recent(c.Request.Context(), days)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Recent books retrieved successfully", model.ToResponses(books))
}

// SortedByPrice handles GET /books/sorted-by-price?order=
func (h *BookHandler) SortedByPrice(c *gin.Context) {
	order := c.Query("order")

	books, err := h.service.SortedByPrice(c.Request.Context(), order)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", model.ToResponses(books))
}

// Count handles GET /books/count?group_by=
func (h *BookHandler) Count(c *gin.Context) {
	groupBy := c.Query("group_by")

	counts, err := h.service.CountGrouped(c.Request.Context(), groupBy)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book counts retrieved successfully", counts)
}

// ========================================
// HELPERS
// ========================================

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid id format")
		return 0, false
	}
	return id, true
}

func (h *BookHandler) bindAndValidate(c *gin.Context, req *model.CreateBookRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		if errs, ok := err.(validation.Errors); ok {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
			return false
		}
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("book handler error")
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
