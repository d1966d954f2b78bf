package tenancy

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractAlert is a read projection of a contract approaching expiry,
// joined with the tenant and agent contact details needed to notify.
type ContractAlert struct {
	ContractID      int             `json:"contract_id"`
	PropertyName    string          `json:"property_name"`
	Location        string          `json:"location"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	DaysUntilExpiry int             `json:"days_until_expiry"`
	AnnualRent      decimal.Decimal `json:"annual_rent"`
	TenantName      string          `json:"tenant_name"`
	TenantEmail     string          `json:"tenant_email"`
	TenantPhone     string          `json:"tenant_phone"`
	AgentName       string          `json:"agent_name"`
	AgentEmail      string          `json:"agent_email"`
}

// CheckAlert is a read projection of a payment check joined with its
// contract, tenant and agent contact details. Days carries days_overdue
// for overdue checks and days_until_due for upcoming ones.
type CheckAlert struct {
	CheckID      int             `json:"check_id"`
	CheckNo      string          `json:"check_no"`
	CheckDate    time.Time       `json:"check_date"`
	Amount       decimal.Decimal `json:"amount"`
	Days         int             `json:"days"`
	ContractID   int             `json:"contract_id"`
	PropertyName string          `json:"property_name"`
	Location     string          `json:"location"`
	TenantName   string          `json:"tenant_name"`
	TenantEmail  string          `json:"tenant_email"`
	TenantPhone  string          `json:"tenant_phone"`
	AgentName    string          `json:"agent_name"`
	AgentEmail   string          `json:"agent_email"`
}

// GenerationResult summarizes one check generation run
type GenerationResult struct {
	TotalContracts  int `json:"total_contracts"`
	ChecksGenerated int `json:"checks_generated"`
	ChecksSkipped   int `json:"checks_skipped"`
}

// Statistics aggregates portfolio-wide counts
type Statistics struct {
	TotalContracts    int64 `json:"total_contracts"`
	ActiveContracts   int64 `json:"active_contracts"`
	ExpiredContracts  int64 `json:"expired_contracts"`
	TotalTenants      int64 `json:"total_tenants"`
	TotalChecks       int64 `json:"total_checks"`
	OverdueChecks     int64 `json:"overdue_checks"`
	UpcomingChecks    int64 `json:"upcoming_checks"`
	ExpiringContracts int64 `json:"expiring_contracts"`
}
