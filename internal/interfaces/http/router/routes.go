package router

import (
	"github.com/gin-gonic/gin"
	"github.com/movements/backend/internal/interfaces/http/handler"
)

// CustomerRoutes mounts the customer resource
type CustomerRoutes struct {
	handler *handler.CustomerHandler
}

// NewCustomerRoutes creates the customer route registrar
func NewCustomerRoutes(h *handler.CustomerHandler) *CustomerRoutes {
	return &CustomerRoutes{handler: h}
}

// RegisterRoutes implements RouteRegistrar
func (r *CustomerRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", r.handler.Create)
		customers.GET("", r.handler.List)
		// Static lookups go before the :id route so gin matches them first
		customers.GET("/by-email", r.handler.GetByEmail)
		customers.GET("/by-document", r.handler.GetByDocument)
		customers.GET("/:id", r.handler.GetByID)
		customers.PUT("/:id", r.handler.Update)
		customers.DELETE("/:id", r.handler.Delete)
		customers.POST("/:id/reactivate", r.handler.Reactivate)
	}
}

// ProductRoutes mounts the product resource
type ProductRoutes struct {
	handler *handler.ProductHandler
}

// NewProductRoutes creates the product route registrar
func NewProductRoutes(h *handler.ProductHandler) *ProductRoutes {
	return &ProductRoutes{handler: h}
}

// RegisterRoutes implements RouteRegistrar
func (r *ProductRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", r.handler.Create)
		products.GET("", r.handler.List)
		products.GET("/by-code/:code", r.handler.GetByCode)
		products.GET("/:id", r.handler.GetByID)
		products.PUT("/:id", r.handler.Update)
		products.DELETE("/:id", r.handler.Delete)
		products.POST("/:id/reactivate", r.handler.Reactivate)
	}
}

// ProductCosifRoutes mounts the product COSIF link resource
type ProductCosifRoutes struct {
	handler *handler.ProductCosifHandler
}

// NewProductCosifRoutes creates the COSIF link route registrar
func NewProductCosifRoutes(h *handler.ProductCosifHandler) *ProductCosifRoutes {
	return &ProductCosifRoutes{handler: h}
}

// RegisterRoutes implements RouteRegistrar
func (r *ProductCosifRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	cosifs := rg.Group("/product-cosifs")
	{
		cosifs.POST("", r.handler.Create)
		cosifs.GET("", r.handler.List)
		cosifs.GET("/by-product/:code", r.handler.ListByProduct)
		cosifs.GET("/:id", r.handler.GetByID)
		cosifs.PUT("/:id", r.handler.Update)
		cosifs.DELETE("/:id", r.handler.Delete)
	}
}

// MovementRoutes mounts the manual movement resource
type MovementRoutes struct {
	handler *handler.MovementHandler
}

// NewMovementRoutes creates the movement route registrar
func NewMovementRoutes(h *handler.MovementHandler) *MovementRoutes {
	return &MovementRoutes{handler: h}
}

// RegisterRoutes implements RouteRegistrar
func (r *MovementRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	movements := rg.Group("/manual-movements")
	{
		movements.POST("", r.handler.Create)
		movements.GET("", r.handler.List)
		movements.GET("/by-month-year", r.handler.ListByMonthYear)
		movements.GET("/by-period", r.handler.ListByPeriod)
		movements.GET("/next-launch-number", r.handler.NextLaunchNumber)
		movements.GET("/:id", r.handler.GetByID)
		movements.PUT("/:id", r.handler.Update)
		movements.DELETE("/:id", r.handler.Delete)
	}
}

// SystemRoutes mounts the operational endpoints at the engine root,
// outside the versioned API prefix
type SystemRoutes struct {
	handler *handler.SystemHandler
}

// NewSystemRoutes creates the system route registrar
func NewSystemRoutes(h *handler.SystemHandler) *SystemRoutes {
	return &SystemRoutes{handler: h}
}

// Mount registers the health endpoint directly on the engine
func (r *SystemRoutes) Mount(engine *gin.Engine) {
	engine.GET("/health", r.handler.Health)
}
