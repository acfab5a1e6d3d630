package handler

import (
	"github.com/gin-gonic/gin"
	movementapp "github.com/movements/backend/internal/application/movement"
)

// MovementHandler handles manual movement API endpoints
type MovementHandler struct {
	BaseHandler
	movementService *movementapp.MovementService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(base BaseHandler, movementService *movementapp.MovementService) *MovementHandler {
	return &MovementHandler{
		BaseHandler:     base,
		movementService: movementService,
	}
}

type monthYearQuery struct {
	Month    int `form:"month" binding:"required,min=1,max=12"`
	Year     int `form:"year" binding:"required,min=1900,max=2100"`
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Create handles POST /api/v1/manual-movements
func (h *MovementHandler) Create(c *gin.Context) {
	var req movementapp.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	movement, err := h.movementService.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// GetByID handles GET /api/v1/manual-movements/:id
func (h *MovementHandler) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	movement, err := h.movementService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movement)
}

// List handles GET /api/v1/manual-movements
func (h *MovementHandler) List(c *gin.Context) {
	var filter movementapp.MovementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.movementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paged(c, page)
}

// ListByMonthYear handles GET /api/v1/manual-movements/by-month-year
func (h *MovementHandler) ListByMonthYear(c *gin.Context) {
	var q monthYearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.movementService.ListByMonthYear(c.Request.Context(), q.Month, q.Year, q.Page, q.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paged(c, page)
}

// ListByPeriod handles GET /api/v1/manual-movements/by-period
func (h *MovementHandler) ListByPeriod(c *gin.Context) {
	var filter movementapp.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.movementService.ListByPeriod(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paged(c, page)
}

// NextLaunchNumber handles GET /api/v1/manual-movements/next-launch-number
func (h *MovementHandler) NextLaunchNumber(c *gin.Context) {
	var q monthYearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindingError(c, err)
		return
	}

	next, err := h.movementService.NextLaunchNumber(c.Request.Context(), q.Month, q.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, next)
}

// Update handles PUT /api/v1/manual-movements/:id
func (h *MovementHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	var req movementapp.UpdateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	movement, err := h.movementService.Update(c.Request.Context(), actor(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movement)
}

// Delete handles DELETE /api/v1/manual-movements/:id
func (h *MovementHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	if err := h.movementService.Delete(c.Request.Context(), actor(c), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, nil)
}
