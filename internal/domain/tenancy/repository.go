package tenancy

import (
	"context"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id int) (*Tenant, error)

	// FindByEmail finds a tenant by email
	FindByEmail(ctx context.Context, email string) (*Tenant, error)

	// FindAll finds all tenants matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, error)

	// Save creates or updates a tenant
	Save(ctx context.Context, tenant *Tenant) error

	// ExistsByEmail checks if a tenant with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count counts all tenants
	Count(ctx context.Context) (int64, error)
}

// ContractRepository defines the interface for contract persistence
type ContractRepository interface {
	// FindByID finds a contract by its ID
	FindByID(ctx context.Context, id int) (*Contract, error)

	// FindAll finds all contracts matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Contract, error)

	// FindByTenant finds all contracts for a tenant, newest first
	FindByTenant(ctx context.Context, tenantID int) ([]Contract, error)

	// FindExpiring finds contracts whose expiry date falls in [from, to],
	// joined with tenant contact info, ordered by expiry date
	FindExpiring(ctx context.Context, from, to time.Time) ([]ContractAlert, error)

	// Save creates or updates a contract
	Save(ctx context.Context, contract *Contract) error

	// Count counts all contracts
	Count(ctx context.Context) (int64, error)

	// CountActive counts contracts not yet expired as of the given day
	CountActive(ctx context.Context, asOf time.Time) (int64, error)

	// CountExpired counts contracts expired before the given day
	CountExpired(ctx context.Context, asOf time.Time) (int64, error)
}

// CheckRepository defines the interface for payment check persistence
type CheckRepository interface {
	// FindByContract finds all checks for a contract ordered by check date
	FindByContract(ctx context.Context, contractID int) ([]Check, error)

	// InsertMissing inserts the checks whose check_no does not exist yet.
	// The whole batch runs in one transaction; any failure rolls back
	// every insert. Returns how many were created and how many skipped.
	InsertMissing(ctx context.Context, checks []*Check) (created, skipped int, err error)

	// FindDueBetween finds checks dated in [from, to] joined with contract
	// and tenant info, ordered by check date
	FindDueBetween(ctx context.Context, from, to time.Time) ([]CheckAlert, error)

	// FindOverdue finds checks dated strictly before the given day joined
	// with contract and tenant info, ordered by check date
	FindOverdue(ctx context.Context, before time.Time) ([]CheckAlert, error)

	// Count counts all checks
	Count(ctx context.Context) (int64, error)

	// CountOverdue counts checks dated strictly before the given day
	CountOverdue(ctx context.Context, before time.Time) (int64, error)

	// CountDueBetween counts checks dated in [from, to]
	CountDueBetween(ctx context.Context, from, to time.Time) (int64, error)
}
