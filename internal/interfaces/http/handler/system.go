package handler

import (
	"net/http"

	"github.com/estatelink/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles liveness endpoints
type SystemHandler struct {
	BaseHandler
	db Pinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health godoc
// @ID           healthCheck
// @Summary      Health check
// @Description  Reports service liveness and database reachability
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[HealthData]
// @Failure      503 {object} APIResponse[HealthData]
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	data := HealthData{Status: "ok", Database: "up"}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			data.Status = "degraded"
			data.Database = "down"
			c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(data))
			return
		}
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}
