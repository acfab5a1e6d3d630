package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/shared"
	"github.com/movements/backend/internal/interfaces/http/dto"
	"github.com/movements/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// UserCodeHeader carries the code of the operator performing the request.
// Writes are stamped with it; absent, the fallback actor is used.
const UserCodeHeader = "X-User-Code"

const defaultActor = "system"

// BaseHandler provides the response and error plumbing shared by every handler
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a base handler
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// actor resolves who is performing the request for audit stamping
func actor(c *gin.Context) string {
	if code := c.GetHeader(UserCodeHeader); code != "" {
		return code
	}
	return defaultActor
}

// Success sends a 200 response wrapping data in the standard envelope
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, data))
}

// Created sends a 201 response wrapping data in the standard envelope
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, data))
}

// Paged sends a 200 response with the pagination envelope
func Paged[T any](c *gin.Context, page shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.NewPagedResponse(
		page.Items, page.Total, page.Page, page.PageSize, page.TotalPages))
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// InvalidID sends a 400 response for a malformed identifier
func (h *BaseHandler) InvalidID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		http.StatusBadRequest, "Invalid identifier format",
		[]string{"id: Invalid UUID format"}))
}

// BindingError sends a 400 response for a failed request binding
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	failures := middleware.FormatBindingFailures(err)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		http.StatusBadRequest, "Request validation failed", failures))
}

// HandleError maps service errors onto the wire contract. Missing
// resources answer 404 inside a successful envelope, which existing
// API consumers depend on. Unknown errors are logged server-side and
// answered with a generic 500 that leaks no detail.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, validationErr.Error(), validationErr.Failures))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case "NOT_FOUND":
			c.JSON(http.StatusNotFound, dto.NewNotFoundResponse(domainErr.Message))
		case "ALREADY_EXISTS":
			c.JSON(http.StatusConflict, dto.NewErrorResponse(
				http.StatusConflict, domainErr.Message, []string{domainErr.Message}))
		default:
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest, domainErr.Message, []string{domainErr.Message}))
		}
		return
	}

	h.logger.Error("unhandled error",
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		http.StatusInternalServerError, "An unexpected error occurred", nil))
}
