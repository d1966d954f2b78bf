package tenancy

import (
	"context"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockTenantRepository is a mock implementation of TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id int) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByEmail(ctx context.Context, email string) (*tenancy.Tenant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockContractRepository is a mock implementation of ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindByID(ctx context.Context, id int) (*tenancy.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Contract), args.Error(1)
}

func (m *MockContractRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenancy.Contract, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]tenancy.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByTenant(ctx context.Context, tenantID int) ([]tenancy.Contract, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]tenancy.Contract), args.Error(1)
}

func (m *MockContractRepository) FindExpiring(ctx context.Context, from, to time.Time) ([]tenancy.ContractAlert, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]tenancy.ContractAlert), args.Error(1)
}

func (m *MockContractRepository) Save(ctx context.Context, contract *tenancy.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractRepository) CountActive(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractRepository) CountExpired(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

// MockCheckRepository is a mock implementation of CheckRepository
type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) FindByContract(ctx context.Context, contractID int) ([]tenancy.Check, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]tenancy.Check), args.Error(1)
}

func (m *MockCheckRepository) InsertMissing(ctx context.Context, checks []*tenancy.Check) (int, int, error) {
	args := m.Called(ctx, checks)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockCheckRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]tenancy.CheckAlert, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]tenancy.CheckAlert), args.Error(1)
}

func (m *MockCheckRepository) FindOverdue(ctx context.Context, before time.Time) ([]tenancy.CheckAlert, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]tenancy.CheckAlert), args.Error(1)
}

func (m *MockCheckRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckRepository) CountOverdue(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckRepository) CountDueBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyContractExpiry(ctx context.Context, alert tenancy.ContractAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockNotifier) NotifyCheckDue(ctx context.Context, alert tenancy.CheckAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockNotifier) NotifyCheckOverdue(ctx context.Context, alert tenancy.CheckAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

// Interface compliance
var (
	_ tenancy.TenantRepository   = (*MockTenantRepository)(nil)
	_ tenancy.ContractRepository = (*MockContractRepository)(nil)
	_ tenancy.CheckRepository    = (*MockCheckRepository)(nil)
	_ Notifier                   = (*MockNotifier)(nil)
)
