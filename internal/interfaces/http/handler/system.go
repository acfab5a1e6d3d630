package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/movements/backend/internal/interfaces/http/dto"
)

// Pinger reports whether the backing datastore is reachable
type Pinger interface {
	Ping() error
}

// HealthStatus is the payload of the health endpoint
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version"`
}

// SystemHandler handles operational endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	version   string
	startedAt time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(base BaseHandler, db Pinger, version string) *SystemHandler {
	return &SystemHandler{
		BaseHandler: base,
		db:          db,
		version:     version,
		startedAt:   time.Now(),
	}
}

// Health handles GET /health. It answers 503 when the database is
// unreachable so load balancers stop routing here.
func (h *SystemHandler) Health(c *gin.Context) {
	status := HealthStatus{
		Status:   "healthy",
		Database: "up",
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
		Version:  h.version,
	}

	if err := h.db.Ping(); err != nil {
		status.Status = "unhealthy"
		status.Database = "down"
		resp := dto.NewErrorResponse(http.StatusServiceUnavailable, "Database unreachable", nil)
		resp.Data = status
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	h.Success(c, status)
}
