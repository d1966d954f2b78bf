package handler

import (
	apptenancy "github.com/estatelink/backend/internal/application/tenancy"
	"github.com/gin-gonic/gin"
)

// ContractHandler handles contract-related API endpoints
type ContractHandler struct {
	BaseHandler
	contractService *apptenancy.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *apptenancy.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// Create godoc
// @ID           createContract
// @Summary      Create a new contract
// @Description  Create a tenancy contract for an existing tenant
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        request body tenancy.CreateContractRequest true "Contract creation request"
// @Success      201 {object} APIResponse[tenancy.ContractResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	var req apptenancy.CreateContractRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.contractService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID godoc
// @ID           getContract
// @Summary      Get a contract summary
// @Description  Get a contract by ID together with its stored check schedule
// @Tags         contracts
// @Produce      json
// @Param        id path int true "Contract ID"
// @Success      200 {object} APIResponse[tenancy.ContractSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetByID(c *gin.Context) {
	id, ok := h.BindID(c)
	if !ok {
		return
	}

	resp, err := h.contractService.GetSummary(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @ID           listContracts
// @Summary      List contracts
// @Description  List contracts with filtering and pagination
// @Tags         contracts
// @Produce      json
// @Param        search query string false "Search in property name and location"
// @Param        tenant_id query int false "Filter by tenant"
// @Param        payment_method query string false "Filter by payment method" Enums(Cheque, Bank Transfer, Cash)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]tenancy.ContractResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	var filter apptenancy.ContractListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	items, total, err := h.contractService.List(c.Request.Context(), filter)
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
