package persistence

import (
	"context"
	"time"

	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/estatelink/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCheckRepository implements CheckRepository using GORM
type GormCheckRepository struct {
	db *gorm.DB
}

// NewGormCheckRepository creates a new GormCheckRepository
func NewGormCheckRepository(db *gorm.DB) *GormCheckRepository {
	return &GormCheckRepository{db: db}
}

// FindByContract finds all checks for a contract ordered by check date
func (r *GormCheckRepository) FindByContract(ctx context.Context, contractID int) ([]tenancy.Check, error) {
	var checkModels []models.CheckModel
	if err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("check_date ASC").
		Find(&checkModels).Error; err != nil {
		return nil, err
	}

	checks := make([]tenancy.Check, len(checkModels))
	for i, model := range checkModels {
		checks[i] = *model.ToDomain()
	}
	return checks, nil
}

// InsertMissing inserts the checks whose check_no does not exist yet.
// The whole batch runs in one transaction; any failure rolls back every
// insert of the run. Returns how many were created and how many skipped.
func (r *GormCheckRepository) InsertMissing(ctx context.Context, checks []*tenancy.Check) (int, int, error) {
	if len(checks) == 0 {
		return 0, 0, nil
	}

	created, skipped := 0, 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, check := range checks {
			var count int64
			if err := tx.Model(&models.CheckModel{}).
				Where("check_no = ?", check.CheckNo).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				skipped++
				continue
			}

			model := models.CheckModelFromDomain(check)
			if err := tx.Create(model).Error; err != nil {
				return err
			}
			check.ID = model.ID
			created++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, skipped, nil
}

// checkAlertRow is the scan target for check joins with contract and tenant info
type checkAlertRow struct {
	CheckID      int
	CheckNo      string
	CheckDate    time.Time
	Amount       decimal.Decimal
	ContractID   int
	PropertyName string
	Location     string
	TenantName   string
	TenantEmail  string
	TenantPhone  string
	AgentName    string
	AgentEmail   string
}

func (r *GormCheckRepository) alertQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("checks").
		Select(`checks.id AS check_id, checks.check_no, checks.check_date, checks.amount,
			contracts.id AS contract_id, contracts.property_name, contracts.location,
			contracts.agent_name, contracts.agent_email,
			tenants.name AS tenant_name, tenants.email AS tenant_email, tenants.phone AS tenant_phone`).
		Joins("JOIN contracts ON contracts.id = checks.contract_id").
		Joins("JOIN tenants ON tenants.id = contracts.tenant_id")
}

func toCheckAlerts(rows []checkAlertRow, days func(checkDate time.Time) int) []tenancy.CheckAlert {
	alerts := make([]tenancy.CheckAlert, len(rows))
	for i, row := range rows {
		alerts[i] = tenancy.CheckAlert{
			CheckID:      row.CheckID,
			CheckNo:      row.CheckNo,
			CheckDate:    row.CheckDate,
			Amount:       row.Amount,
			Days:         days(row.CheckDate),
			ContractID:   row.ContractID,
			PropertyName: row.PropertyName,
			Location:     row.Location,
			TenantName:   row.TenantName,
			TenantEmail:  row.TenantEmail,
			TenantPhone:  row.TenantPhone,
			AgentName:    row.AgentName,
			AgentEmail:   row.AgentEmail,
		}
	}
	return alerts
}

// FindDueBetween finds checks dated in [from, to] joined with contract
// and tenant info, ordered by check date. Days carries days until due
// counted from the window start.
func (r *GormCheckRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]tenancy.CheckAlert, error) {
	var rows []checkAlertRow
	if err := r.alertQuery(ctx).
		Where("checks.check_date BETWEEN ? AND ?", from, to).
		Order("checks.check_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toCheckAlerts(rows, func(checkDate time.Time) int {
		return int(checkDate.Sub(from).Hours() / 24)
	}), nil
}

// FindOverdue finds checks dated strictly before the given day joined
// with contract and tenant info, ordered by check date. Days carries
// days overdue.
func (r *GormCheckRepository) FindOverdue(ctx context.Context, before time.Time) ([]tenancy.CheckAlert, error) {
	var rows []checkAlertRow
	if err := r.alertQuery(ctx).
		Where("checks.check_date < ?", before).
		Order("checks.check_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toCheckAlerts(rows, func(checkDate time.Time) int {
		return int(before.Sub(checkDate).Hours() / 24)
	}), nil
}

// Count counts all checks
func (r *GormCheckRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CheckModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOverdue counts checks dated strictly before the given day
func (r *GormCheckRepository) CountOverdue(ctx context.Context, before time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CheckModel{}).
		Where("check_date < ?", before).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountDueBetween counts checks dated in [from, to]
func (r *GormCheckRepository) CountDueBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CheckModel{}).
		Where("check_date BETWEEN ? AND ?", from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCheckRepository implements CheckRepository
var _ tenancy.CheckRepository = (*GormCheckRepository)(nil)
