package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormContractRepository_FindByID(t *testing.T) {
	t.Run("finds existing contract", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormContractRepository(gormDB)

		now := time.Now()
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		expiry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{
			"id", "created_at", "updated_at", "tenant_id", "property_name", "location",
			"start_date", "expiry_date", "annual_rent", "num_checks", "payment_method",
			"agent_name", "agent_email", "tenant_name", "tenant_email", "tenant_phone",
		}).AddRow(5, now, now, 1, "Marina Heights 1204", "Dubai Marina",
			start, expiry, decimal.NewFromInt(100000), 4, "Cheque",
			"Sara Haddad", "sara@agency.ae", "Omar Khalil", "omar@example.com", "+971501234567")

		mock.ExpectQuery(`SELECT contracts\.\*, .* FROM "contracts" JOIN tenants ON tenants.id = contracts.tenant_id WHERE contracts.id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(5, 1).
			WillReturnRows(rows)

		contract, err := repo.FindByID(context.Background(), 5)

		assert.NoError(t, err)
		assert.NotNil(t, contract)
		assert.Equal(t, 5, contract.ID)
		assert.Equal(t, "Marina Heights 1204", contract.PropertyName)
		assert.Equal(t, 4, contract.NumChecks)
		assert.True(t, decimal.NewFromInt(100000).Equal(contract.AnnualRent))
		assert.Equal(t, "Omar Khalil", contract.TenantName)
		assert.Equal(t, "omar@example.com", contract.TenantEmail)
		assert.Equal(t, "+971501234567", contract.TenantPhone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing contract", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormContractRepository(gormDB)

		mock.ExpectQuery(`SELECT contracts\.\*, .* FROM "contracts" JOIN tenants ON tenants.id = contracts.tenant_id WHERE contracts.id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		contract, err := repo.FindByID(context.Background(), 99)

		assert.Error(t, err)
		assert.Nil(t, contract)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormContractRepository_FindExpiring(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormContractRepository(gormDB)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 100)
	expiry := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"contract_id", "property_name", "location", "expiry_date", "annual_rent",
		"agent_name", "agent_email", "tenant_name", "tenant_email", "tenant_phone",
	}).AddRow(3, "Marina Heights 1204", "Dubai Marina", expiry, decimal.NewFromInt(90000),
		"Sara Haddad", "sara@agency.ae", "Omar Khalil", "omar@example.com", "+971501234567")

	mock.ExpectQuery(`SELECT .* FROM "contracts" JOIN tenants ON tenants.id = contracts.tenant_id WHERE contracts.expiry_date BETWEEN \$1 AND \$2`).
		WithArgs(from, to).
		WillReturnRows(rows)

	alerts, err := repo.FindExpiring(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, 3, alerts[0].ContractID)
	assert.Equal(t, 44, alerts[0].DaysUntilExpiry)
	assert.Equal(t, "omar@example.com", alerts[0].TenantEmail)
	assert.Equal(t, "sara@agency.ae", alerts[0].AgentEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormContractRepository_Counts(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormContractRepository(gormDB)

	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contracts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contracts" WHERE expiry_date >= \$1`).
		WithArgs(asOf).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contracts" WHERE expiry_date < \$1`).
		WithArgs(asOf).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), total)

	active, err := repo.CountActive(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), active)

	expired, err := repo.CountExpired(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), expired)

	assert.NoError(t, mock.ExpectationsWereMet())
}
