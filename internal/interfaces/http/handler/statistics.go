package handler

import (
	apptenancy "github.com/estatelink/backend/internal/application/tenancy"
	"github.com/gin-gonic/gin"
)

// StatisticsHandler handles the portfolio statistics endpoint
type StatisticsHandler struct {
	BaseHandler
	statisticsService *apptenancy.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(statisticsService *apptenancy.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// Get godoc
// @ID           getStatistics
// @Summary      Get portfolio statistics
// @Description  Aggregate counts for contracts, tenants and checks
// @Tags         statistics
// @Produce      json
// @Success      200 {object} APIResponse[tenancy.Statistics]
// @Failure      500 {object} ErrorResponse
// @Router       /statistics [get]
func (h *StatisticsHandler) Get(c *gin.Context) {
	stats, err := h.statisticsService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}
