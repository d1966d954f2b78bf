package tenancy

import (
	"context"
	"errors"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/estatelink/backend/internal/domain/tenancy"
)

// ContractService handles contract-related business operations
type ContractService struct {
	contractRepo tenancy.ContractRepository
	tenantRepo   tenancy.TenantRepository
	checkRepo    tenancy.CheckRepository
	now          func() time.Time
}

// NewContractService creates a new ContractService
func NewContractService(contractRepo tenancy.ContractRepository, tenantRepo tenancy.TenantRepository, checkRepo tenancy.CheckRepository) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		tenantRepo:   tenantRepo,
		checkRepo:    checkRepo,
		now:          time.Now,
	}
}

// Create creates a new contract for an existing tenant
func (s *ContractService) Create(ctx context.Context, req CreateContractRequest) (*ContractResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Tenant not found")
		}
		return nil, err
	}

	startDate, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATES", "Start date must use the YYYY-MM-DD format")
	}
	expiryDate, err := time.Parse(DateLayout, req.ExpiryDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATES", "Expiry date must use the YYYY-MM-DD format")
	}

	contract, err := tenancy.NewContract(req.TenantID, req.PropertyName, req.Location,
		startDate, expiryDate, req.AnnualRent, req.NumChecks,
		tenancy.PaymentMethod(req.PaymentMethod), req.AgentName, req.AgentEmail)
	if err != nil {
		return nil, err
	}

	// Read queries join the tenant contact in; fill it here so the
	// create response matches them
	contract.TenantName = tenant.Name
	contract.TenantEmail = tenant.Email
	contract.TenantPhone = tenant.Phone

	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}

	response := ToContractResponse(contract, s.now().UTC())
	return &response, nil
}

// GetByID retrieves a contract by ID
func (s *ContractService) GetByID(ctx context.Context, id int) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToContractResponse(contract, s.now().UTC())
	return &response, nil
}

// GetSummary retrieves a contract together with its stored check schedule
func (s *ContractService) GetSummary(ctx context.Context, id int) (*ContractSummaryResponse, error) {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	checks, err := s.checkRepo.FindByContract(ctx, id)
	if err != nil {
		return nil, err
	}

	checkResponses := make([]CheckResponse, len(checks))
	for i := range checks {
		checkResponses[i] = ToCheckResponse(&checks[i])
	}

	return &ContractSummaryResponse{
		Contract:   ToContractResponse(contract, s.now().UTC()),
		Checks:     checkResponses,
		CheckCount: len(checkResponses),
	}, nil
}

// List retrieves contracts with filtering and pagination
func (s *ContractService) List(ctx context.Context, filter ContractListFilter) ([]ContractResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "expiry_date"
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
	if filter.TenantID > 0 {
		domainFilter.Filters["tenant_id"] = filter.TenantID
	}
	if filter.PaymentMethod != "" {
		domainFilter.Filters["payment_method"] = filter.PaymentMethod
	}

	contracts, err := s.contractRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.contractRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	now := s.now().UTC()
	responses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = ToContractResponse(&contracts[i], now)
	}
	return responses, total, nil
}
