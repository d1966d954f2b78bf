package handler

import (
	apptenancy "github.com/estatelink/backend/internal/application/tenancy"
	"github.com/gin-gonic/gin"
)

// TenantHandler handles tenant-related API endpoints
type TenantHandler struct {
	BaseHandler
	tenantService *apptenancy.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *apptenancy.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create godoc
// @ID           createTenant
// @Summary      Create a new tenant
// @Description  Register a tenant with a unique email and a UAE phone number
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request body tenancy.CreateTenantRequest true "Tenant creation request"
// @Success      201 {object} APIResponse[tenancy.TenantResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var req apptenancy.CreateTenantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.tenantService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID godoc
// @ID           getTenant
// @Summary      Get a tenant
// @Description  Get a tenant by ID together with its contracts
// @Tags         tenants
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200 {object} APIResponse[tenancy.TenantDetailResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /tenants/{id} [get]
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, ok := h.BindID(c)
	if !ok {
		return
	}

	resp, err := h.tenantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @ID           listTenants
// @Summary      List tenants
// @Description  List tenants with search and pagination
// @Tags         tenants
// @Produce      json
// @Param        search query string false "Search in name, email and phone"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]tenancy.TenantResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	var filter apptenancy.TenantListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	items, total, err := h.tenantService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := filter.Page, filter.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, items, total, page, pageSize)
}
