package tenancy

import (
	"time"

	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for contract and check dates
const DateLayout = "2006-01-02"

// =============================================================================
// Tenant DTOs
// =============================================================================

// CreateTenantRequest represents a request to create a new tenant
type CreateTenantRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"required,email,max=200"`
	Phone string `json:"phone" binding:"required,uaephone"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantDetailResponse is a tenant together with its contracts
type TenantDetailResponse struct {
	TenantResponse
	Contracts []ContractResponse `json:"contracts"`
}

// TenantListFilter represents filter options for tenant list
type TenantListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=name email created_at"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToTenantResponse converts a domain tenant to a response DTO
func ToTenantResponse(t *tenancy.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// =============================================================================
// Contract DTOs
// =============================================================================

// CreateContractRequest represents a request to create a new contract.
// Dates use the YYYY-MM-DD layout.
type CreateContractRequest struct {
	TenantID      int             `json:"tenant_id" binding:"required,min=1"`
	PropertyName  string          `json:"property_name" binding:"required,min=1,max=200"`
	Location      string          `json:"location" binding:"required,min=1,max=200"`
	StartDate     string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	ExpiryDate    string          `json:"expiry_date" binding:"required,datetime=2006-01-02"`
	AnnualRent    decimal.Decimal `json:"annual_rent" binding:"required"`
	NumChecks     int             `json:"num_checks" binding:"required,min=1,max=12"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=Cheque 'Bank Transfer' Cash"`
	AgentName     string          `json:"agent_name" binding:"max=200"`
	AgentEmail    string          `json:"agent_email" binding:"omitempty,email,max=200"`
}

// ContractResponse represents a contract in API responses, with the
// tenant's contact details joined in
type ContractResponse struct {
	ID              int             `json:"id"`
	TenantID        int             `json:"tenant_id"`
	TenantName      string          `json:"tenant_name"`
	TenantEmail     string          `json:"tenant_email"`
	TenantPhone     string          `json:"tenant_phone"`
	PropertyName    string          `json:"property_name"`
	Location        string          `json:"location"`
	StartDate       string          `json:"start_date"`
	ExpiryDate      string          `json:"expiry_date"`
	AnnualRent      decimal.Decimal `json:"annual_rent"`
	NumChecks       int             `json:"num_checks"`
	PaymentMethod   string          `json:"payment_method"`
	AgentName       string          `json:"agent_name"`
	AgentEmail      string          `json:"agent_email"`
	DaysUntilExpiry int             `json:"days_until_expiry"`
	Expired         bool            `json:"expired"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ContractSummaryResponse is a contract with its stored check schedule
type ContractSummaryResponse struct {
	Contract   ContractResponse `json:"contract"`
	Checks     []CheckResponse  `json:"checks"`
	CheckCount int              `json:"check_count"`
}

// ContractListFilter represents filter options for contract list
type ContractListFilter struct {
	Search        string `form:"search"`
	TenantID      int    `form:"tenant_id" binding:"omitempty,min=1"`
	PaymentMethod string `form:"payment_method" binding:"omitempty,oneof=Cheque 'Bank Transfer' Cash"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by" binding:"omitempty,oneof=expiry_date start_date annual_rent created_at"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToContractResponse converts a domain contract to a response DTO.
// Expiry fields are computed relative to asOf.
func ToContractResponse(c *tenancy.Contract, asOf time.Time) ContractResponse {
	return ContractResponse{
		ID:              c.ID,
		TenantID:        c.TenantID,
		TenantName:      c.TenantName,
		TenantEmail:     c.TenantEmail,
		TenantPhone:     c.TenantPhone,
		PropertyName:    c.PropertyName,
		Location:        c.Location,
		StartDate:       c.StartDate.Format(DateLayout),
		ExpiryDate:      c.ExpiryDate.Format(DateLayout),
		AnnualRent:      c.AnnualRent,
		NumChecks:       c.NumChecks,
		PaymentMethod:   string(c.PaymentMethod),
		AgentName:       c.AgentName,
		AgentEmail:      c.AgentEmail,
		DaysUntilExpiry: c.DaysUntilExpiry(asOf),
		Expired:         c.IsExpired(asOf),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// =============================================================================
// Check DTOs
// =============================================================================

// CheckResponse represents a payment check in API responses
type CheckResponse struct {
	ID         int             `json:"id"`
	ContractID int             `json:"contract_id"`
	CheckNo    string          `json:"check_no"`
	CheckDate  string          `json:"check_date"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToCheckResponse converts a domain check to a response DTO
func ToCheckResponse(c *tenancy.Check) CheckResponse {
	return CheckResponse{
		ID:         c.ID,
		ContractID: c.ContractID,
		CheckNo:    c.CheckNo,
		CheckDate:  c.CheckDate.Format(DateLayout),
		Amount:     c.Amount,
		CreatedAt:  c.CreatedAt,
	}
}

// =============================================================================
// Alert DTOs
// =============================================================================

// AlertWindowRequest carries the days query parameter for alert lookups
type AlertWindowRequest struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

// NotifyResult summarizes one notification run
type NotifyResult struct {
	ExpiringContracts int `json:"expiring_contracts"`
	OverdueChecks     int `json:"overdue_checks"`
	UpcomingChecks    int `json:"upcoming_checks"`
	EmailsSent        int `json:"emails_sent"`
}
