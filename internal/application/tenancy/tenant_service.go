package tenancy

import (
	"context"
	"strings"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/estatelink/backend/internal/domain/tenancy"
)

// TenantService handles tenant-related business operations
type TenantService struct {
	tenantRepo   tenancy.TenantRepository
	contractRepo tenancy.ContractRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo tenancy.TenantRepository, contractRepo tenancy.ContractRepository) *TenantService {
	return &TenantService{
		tenantRepo:   tenantRepo,
		contractRepo: contractRepo,
	}
}

// Create creates a new tenant
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	// Emails are stored lower case; the uniqueness check must match that form
	email := strings.ToLower(req.Email)

	exists, err := s.tenantRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Tenant with this email already exists")
	}

	tenant, err := tenancy.NewTenant(req.Name, email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// GetByID retrieves a tenant by ID together with its contracts
func (s *TenantService) GetByID(ctx context.Context, id int) (*TenantDetailResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.FindByTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contractResponses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		contractResponses[i] = ToContractResponse(&contracts[i], now)
	}

	return &TenantDetailResponse{
		TenantResponse: ToTenantResponse(tenant),
		Contracts:      contractResponses,
	}, nil
}

// List retrieves tenants with filtering and pagination
func (s *TenantService) List(ctx context.Context, filter TenantListFilter) ([]TenantResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  map[string]interface{}{},
	}

	tenants, err := s.tenantRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.tenantRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses, total, nil
}
