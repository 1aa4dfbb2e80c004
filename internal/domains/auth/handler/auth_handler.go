package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"bookcatalog/internal/domains/auth/model"
	"bookcatalog/internal/domains/auth/service"
	"bookcatalog/internal/shared/response"
)

// AuthHandler exposes the single-credential login endpoint.
type AuthHandler struct {
	service service.ServiceInterface
}

func NewAuthHandler(service service.ServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		if errs, ok := err.(validation.Errors); ok {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("login failed")
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, result.Message, gin.H{"token": result.Token})
}
