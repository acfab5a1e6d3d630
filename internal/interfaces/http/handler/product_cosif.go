package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/movements/backend/internal/application/catalog"
)

// ProductCosifHandler handles COSIF account link API endpoints
type ProductCosifHandler struct {
	BaseHandler
	cosifService *catalogapp.ProductCosifService
}

// NewProductCosifHandler creates a new ProductCosifHandler
func NewProductCosifHandler(base BaseHandler, cosifService *catalogapp.ProductCosifService) *ProductCosifHandler {
	return &ProductCosifHandler{
		BaseHandler:  base,
		cosifService: cosifService,
	}
}

// Create handles POST /api/v1/product-cosifs
func (h *ProductCosifHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductCosifRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cosif, err := h.cosifService.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, cosif)
}

// GetByID handles GET /api/v1/product-cosifs/:id
func (h *ProductCosifHandler) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	cosif, err := h.cosifService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cosif)
}

// ListByProduct handles GET /api/v1/product-cosifs/by-product/:code
func (h *ProductCosifHandler) ListByProduct(c *gin.Context) {
	cosifs, err := h.cosifService.ListByProduct(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cosifs)
}

// List handles GET /api/v1/product-cosifs
func (h *ProductCosifHandler) List(c *gin.Context) {
	var filter catalogapp.ProductCosifListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.cosifService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paged(c, page)
}

// Update handles PUT /api/v1/product-cosifs/:id
func (h *ProductCosifHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	var req catalogapp.UpdateProductCosifRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cosif, err := h.cosifService.Update(c.Request.Context(), actor(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cosif)
}

// Delete handles DELETE /api/v1/product-cosifs/:id
func (h *ProductCosifHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.InvalidID(c)
		return
	}

	if err := h.cosifService.Delete(c.Request.Context(), actor(c), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, nil)
}
