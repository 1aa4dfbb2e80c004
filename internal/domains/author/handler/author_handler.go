package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"bookcatalog/internal/domains/author/model"
	"bookcatalog/internal/domains/author/service"
	"bookcatalog/internal/shared/response"
)

// AuthorHandler translates HTTP requests into author service calls.
// Stateless, holds dependencies only.
type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(service service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// ========================================
// CRUD ENDPOINTS
// ========================================

// Create handles POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	author, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Author created successfully", author.ToResponse())
}

// GetAll handles GET /authors
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Authors retrieved successfully", toResponses(authors))
}

// GetByID handles GET /authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author retrieved successfully", author.ToResponse())
}

// Update handles PUT /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CreateAuthorRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	author, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author updated successfully", author.ToResponse())
}

// Delete handles DELETE /authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author deleted successfully", nil)
}

// ========================================
// QUERY ENDPOINTS
// ========================================

// Search handles GET /authors/search?name=
func (h *AuthorHandler) Search(c *gin.Context) {
	name := c.Query("name")

	authors, err := h.service.Search(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Authors retrieved successfully", toResponses(authors))
}

// Top handles GET /authors/top?limit=
func (h *AuthorHandler) Top(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.ErrorResponse(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer")
			return
		}
		limit = parsed
	}

	authors, err := h.service.Top(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Top authors retrieved successfully", toResponses(authors))
}

// Books handles GET /authors/:id/books
func (h *AuthorHandler) Books(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	books, err := h.service.Books(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author books retrieved successfully", books)
}

// Summary handles GET /authors/:id/summary
func (h *AuthorHandler) Summary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author summary retrieved successfully", summary)
}

// Statistics handles GET /authors/:id/statistics
func (h *AuthorHandler) Statistics(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author statistics retrieved successfully", stats)
}

// BulkCreate handles POST /authors/bulk
func (h *AuthorHandler) BulkCreate(c *gin.Context) {
	var req model.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.validationError(c, err)
		return
	}

	result, err := h.service.BulkCreate(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if len(result.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	response.Success(c, status, "Bulk create completed", result)
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

func (h *AuthorHandler) bindAndValidate(c *gin.Context, req *model.CreateAuthorRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		h.validationError(c, err)
		return false
	}
	return true
}

func (h *AuthorHandler) validationError(c *gin.Context, err error) {
	if errs, ok := err.(validation.Errors); ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}
	response.BadRequest(c, err.Error())
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("author handler error")
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}

func toResponses(authors []model.Author) []model.AuthorResponse {
	out := make([]model.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.ToResponse())
	}
	return out
}
