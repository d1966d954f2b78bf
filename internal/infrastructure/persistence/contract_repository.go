package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/estatelink/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// withTenant starts a contract query with the tenant contact columns
// joined in, so read results carry the tenant info alongside the contract
func (r *GormContractRepository) withTenant(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Select("contracts.*, tenants.name AS tenant_name, tenants.email AS tenant_email, tenants.phone AS tenant_phone").
		Joins("JOIN tenants ON tenants.id = contracts.tenant_id")
}

// FindByID finds a contract by its ID, with tenant contact info joined in
func (r *GormContractRepository) FindByID(ctx context.Context, id int) (*tenancy.Contract, error) {
	var model models.ContractModel
	if err := r.withTenant(ctx).First(&model, "contracts.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all contracts matching the filter, with tenant contact
// info joined in
func (r *GormContractRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Contract, error) {
	var contractModels []models.ContractModel
	query := r.applyFilter(r.withTenant(ctx), filter)

	if err := query.Find(&contractModels).Error; err != nil {
		return nil, err
	}

	contracts := make([]tenancy.Contract, len(contractModels))
	for i, model := range contractModels {
		contracts[i] = *model.ToDomain()
	}
	return contracts, nil
}

// FindByTenant finds all contracts for a tenant, newest first
func (r *GormContractRepository) FindByTenant(ctx context.Context, tenantID int) ([]tenancy.Contract, error) {
	var contractModels []models.ContractModel
	if err := r.withTenant(ctx).
		Where("contracts.tenant_id = ?", tenantID).
		Order("contracts.start_date DESC").
		Find(&contractModels).Error; err != nil {
		return nil, err
	}

	contracts := make([]tenancy.Contract, len(contractModels))
	for i, model := range contractModels {
		contracts[i] = *model.ToDomain()
	}
	return contracts, nil
}

// contractAlertRow is the scan target for the expiring-contracts join
type contractAlertRow struct {
	ContractID   int
	PropertyName string
	Location     string
	ExpiryDate   time.Time
	AnnualRent   decimal.Decimal
	TenantName   string
	TenantEmail  string
	TenantPhone  string
	AgentName    string
	AgentEmail   string
}

// FindExpiring finds contracts whose expiry date falls in [from, to],
// joined with tenant contact info, ordered by expiry date
func (r *GormContractRepository) FindExpiring(ctx context.Context, from, to time.Time) ([]tenancy.ContractAlert, error) {
	var rows []contractAlertRow
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Select(`contracts.id AS contract_id, contracts.property_name, contracts.location,
			contracts.expiry_date, contracts.annual_rent, contracts.agent_name, contracts.agent_email,
			tenants.name AS tenant_name, tenants.email AS tenant_email, tenants.phone AS tenant_phone`).
		Joins("JOIN tenants ON tenants.id = contracts.tenant_id").
		Where("contracts.expiry_date BETWEEN ? AND ?", from, to).
		Order("contracts.expiry_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	alerts := make([]tenancy.ContractAlert, len(rows))
	for i, row := range rows {
		alerts[i] = tenancy.ContractAlert{
			ContractID:      row.ContractID,
			PropertyName:    row.PropertyName,
			Location:        row.Location,
			ExpiryDate:      row.ExpiryDate,
			DaysUntilExpiry: int(row.ExpiryDate.Sub(from).Hours() / 24),
			AnnualRent:      row.AnnualRent,
			TenantName:      row.TenantName,
			TenantEmail:     row.TenantEmail,
			TenantPhone:     row.TenantPhone,
			AgentName:       row.AgentName,
			AgentEmail:      row.AgentEmail,
		}
	}
	return alerts, nil
}

// Save creates or updates a contract
func (r *GormContractRepository) Save(ctx context.Context, contract *tenancy.Contract) error {
	model := models.ContractModelFromDomain(contract)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	contract.ID = model.ID
	return nil
}

// Count counts all contracts
func (r *GormContractRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActive counts contracts not yet expired as of the given day
func (r *GormContractRepository) CountActive(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("expiry_date >= ?", asOf).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountExpired counts contracts expired before the given day
func (r *GormContractRepository) CountExpired(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("expiry_date < ?", asOf).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query. Columns are qualified
// because the base query joins the tenants table.
func (r *GormContractRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("contracts.property_name ILIKE ? OR contracts.location ILIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "tenant_id":
			query = query.Where("contracts.tenant_id = ?", value)
		case "payment_method":
			query = query.Where("contracts.payment_method = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order("contracts." + filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("contracts.expiry_date ASC")
	}

	return query
}

// Ensure GormContractRepository implements ContractRepository
var _ tenancy.ContractRepository = (*GormContractRepository)(nil)
