package handler

import (
	apptenancy "github.com/estatelink/backend/internal/application/tenancy"
	"github.com/gin-gonic/gin"
)

// AlertHandler handles alerting API endpoints
type AlertHandler struct {
	BaseHandler
	alertService *apptenancy.AlertService
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alertService *apptenancy.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// Expiring godoc
// @ID           expiringContracts
// @Summary      List expiring contracts
// @Description  List contracts expiring within the given number of days from today
// @Tags         alerts
// @Produce      json
// @Param        days query int false "Lookahead window in days" default(100) minimum(1) maximum(365)
// @Success      200 {object} APIResponse[[]tenancy.ContractAlert]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /alerts/expiring [get]
func (h *AlertHandler) Expiring(c *gin.Context) {
	var req apptenancy.AlertWindowRequest
	if !h.BindQuery(c, &req) {
		return
	}

	alerts, err := h.alertService.Expiring(c.Request.Context(), req.Days)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, alerts)
}

// Notify godoc
// @ID           sendAlertNotifications
// @Summary      Send alert notifications
// @Description  Email expiry notices, overdue notices and payment reminders to the affected tenants
// @Tags         alerts
// @Produce      json
// @Success      200 {object} APIResponse[tenancy.NotifyResult]
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /alerts/notify [post]
func (h *AlertHandler) Notify(c *gin.Context) {
	result, err := h.alertService.Notify(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
