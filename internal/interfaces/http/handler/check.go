package handler

import (
	apptenancy "github.com/estatelink/backend/internal/application/tenancy"
	"github.com/gin-gonic/gin"
)

// CheckHandler handles payment check API endpoints
type CheckHandler struct {
	BaseHandler
	checkService *apptenancy.CheckService
}

// NewCheckHandler creates a new CheckHandler
func NewCheckHandler(checkService *apptenancy.CheckService) *CheckHandler {
	return &CheckHandler{checkService: checkService}
}

// Generate godoc
// @ID           generateChecks
// @Summary      Generate payment checks
// @Description  Compute the check schedule for every contract and insert the missing checks. Safe to run repeatedly.
// @Tags         checks
// @Produce      json
// @Success      200 {object} APIResponse[tenancy.GenerationResult]
// @Failure      500 {object} ErrorResponse
// @Router       /checks/generate [post]
func (h *CheckHandler) Generate(c *gin.Context) {
	result, err := h.checkService.Generate(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Upcoming godoc
// @ID           upcomingChecks
// @Summary      List upcoming checks
// @Description  List checks due within the given number of days from today
// @Tags         checks
// @Produce      json
// @Param        days query int false "Lookahead window in days" default(30) minimum(1) maximum(365)
// @Success      200 {object} APIResponse[[]tenancy.CheckAlert]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /checks/upcoming [get]
func (h *CheckHandler) Upcoming(c *gin.Context) {
	var req apptenancy.AlertWindowRequest
	if !h.BindQuery(c, &req) {
		return
	}

	alerts, err := h.checkService.Upcoming(c.Request.Context(), req.Days)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, alerts)
}

// Overdue godoc
// @ID           overdueChecks
// @Summary      List overdue checks
// @Description  List checks dated before today, with days overdue and tenant contact info
// @Tags         checks
// @Produce      json
// @Success      200 {object} APIResponse[[]tenancy.CheckAlert]
// @Failure      500 {object} ErrorResponse
// @Router       /checks/overdue [get]
func (h *CheckHandler) Overdue(c *gin.Context) {
	alerts, err := h.checkService.Overdue(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, alerts)
}
