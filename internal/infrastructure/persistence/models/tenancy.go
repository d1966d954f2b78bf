package models

import (
	"time"

	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/shopspring/decimal"
)

// TenantModel is the persistence model for the Tenant domain entity.
type TenantModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(200);not null"`
	Email string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone string `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the persistence model to a domain Tenant entity.
func (m *TenantModel) ToDomain() *tenancy.Tenant {
	return &tenancy.Tenant{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
	}
}

// FromDomain populates the persistence model from a domain Tenant entity.
func (m *TenantModel) FromDomain(t *tenancy.Tenant) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Email = t.Email
	m.Phone = t.Phone
}

// TenantModelFromDomain creates a new persistence model from a domain Tenant entity.
func TenantModelFromDomain(t *tenancy.Tenant) *TenantModel {
	m := &TenantModel{}
	m.FromDomain(t)
	return m
}

// ContractModel is the persistence model for the Contract domain entity.
type ContractModel struct {
	BaseModel
	TenantID      int                   `gorm:"not null;index"`
	PropertyName  string                `gorm:"type:varchar(200);not null"`
	Location      string                `gorm:"type:varchar(200);not null"`
	StartDate     time.Time             `gorm:"type:date;not null"`
	ExpiryDate    time.Time             `gorm:"type:date;not null;index"`
	AnnualRent    decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	NumChecks     int                   `gorm:"not null"`
	PaymentMethod tenancy.PaymentMethod `gorm:"type:varchar(20);not null"`
	AgentName     string                `gorm:"type:varchar(200)"`
	AgentEmail    string                `gorm:"type:varchar(200)"`

	// Joined from the tenants table on reads, never written
	TenantName  string `gorm:"->;-:migration"`
	TenantEmail string `gorm:"->;-:migration"`
	TenantPhone string `gorm:"->;-:migration"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the persistence model to a domain Contract entity.
func (m *ContractModel) ToDomain() *tenancy.Contract {
	return &tenancy.Contract{
		BaseEntity:    m.BaseModel.ToDomain(),
		TenantID:      m.TenantID,
		PropertyName:  m.PropertyName,
		Location:      m.Location,
		StartDate:     m.StartDate,
		ExpiryDate:    m.ExpiryDate,
		AnnualRent:    m.AnnualRent,
		NumChecks:     m.NumChecks,
		PaymentMethod: m.PaymentMethod,
		AgentName:     m.AgentName,
		AgentEmail:    m.AgentEmail,
		TenantName:    m.TenantName,
		TenantEmail:   m.TenantEmail,
		TenantPhone:   m.TenantPhone,
	}
}

// FromDomain populates the persistence model from a domain Contract entity.
func (m *ContractModel) FromDomain(c *tenancy.Contract) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.TenantID = c.TenantID
	m.PropertyName = c.PropertyName
	m.Location = c.Location
	m.StartDate = c.StartDate
	m.ExpiryDate = c.ExpiryDate
	m.AnnualRent = c.AnnualRent
	m.NumChecks = c.NumChecks
	m.PaymentMethod = c.PaymentMethod
	m.AgentName = c.AgentName
	m.AgentEmail = c.AgentEmail
}

// ContractModelFromDomain creates a new persistence model from a domain Contract entity.
func ContractModelFromDomain(c *tenancy.Contract) *ContractModel {
	m := &ContractModel{}
	m.FromDomain(c)
	return m
}

// CheckModel is the persistence model for the Check domain entity.
// The unique index on check_no is the concurrency safeguard for
// repeated generation runs.
type CheckModel struct {
	BaseModel
	ContractID int             `gorm:"not null;index"`
	CheckNo    string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	CheckDate  time.Time       `gorm:"type:date;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (CheckModel) TableName() string {
	return "checks"
}

// ToDomain converts the persistence model to a domain Check entity.
func (m *CheckModel) ToDomain() *tenancy.Check {
	return &tenancy.Check{
		BaseEntity: m.BaseModel.ToDomain(),
		ContractID: m.ContractID,
		CheckNo:    m.CheckNo,
		CheckDate:  m.CheckDate,
		Amount:     m.Amount,
	}
}

// FromDomain populates the persistence model from a domain Check entity.
func (m *CheckModel) FromDomain(c *tenancy.Check) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.ContractID = c.ContractID
	m.CheckNo = c.CheckNo
	m.CheckDate = c.CheckDate
	m.Amount = c.Amount
}

// CheckModelFromDomain creates a new persistence model from a domain Check entity.
func CheckModelFromDomain(c *tenancy.Check) *CheckModel {
	m := &CheckModel{}
	m.FromDomain(c)
	return m
}
