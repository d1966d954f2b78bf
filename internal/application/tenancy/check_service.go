package tenancy

import (
	"context"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/estatelink/backend/internal/domain/tenancy"
)

// DefaultUpcomingDays is the lookahead window for upcoming checks
const DefaultUpcomingDays = 30

// CheckService handles payment check generation and lookups
type CheckService struct {
	contractRepo tenancy.ContractRepository
	checkRepo    tenancy.CheckRepository
	now          func() time.Time
}

// NewCheckService creates a new CheckService
func NewCheckService(contractRepo tenancy.ContractRepository, checkRepo tenancy.CheckRepository) *CheckService {
	return &CheckService{
		contractRepo: contractRepo,
		checkRepo:    checkRepo,
		now:          time.Now,
	}
}

// Generate computes the check schedule for every contract and inserts the
// checks that do not exist yet. Existing check numbers are left untouched,
// so the run is idempotent. The whole batch commits or rolls back as one.
func (s *CheckService) Generate(ctx context.Context) (*tenancy.GenerationResult, error) {
	contracts, err := s.contractRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	var checks []*tenancy.Check
	for i := range contracts {
		for _, sc := range contracts[i].BuildSchedule() {
			checks = append(checks, tenancy.NewCheck(contracts[i].ID, sc))
		}
	}

	created, skipped, err := s.checkRepo.InsertMissing(ctx, checks)
	if err != nil {
		return nil, err
	}

	return &tenancy.GenerationResult{
		TotalContracts:  len(contracts),
		ChecksGenerated: created,
		ChecksSkipped:   skipped,
	}, nil
}

// Upcoming lists checks due within the given number of days from today.
// A non-positive window falls back to the default.
func (s *CheckService) Upcoming(ctx context.Context, days int) ([]tenancy.CheckAlert, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	if days > 365 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Days must be between 1 and 365")
	}

	from := truncateToDay(s.now())
	return s.checkRepo.FindDueBetween(ctx, from, from.AddDate(0, 0, days))
}

// Overdue lists checks dated strictly before today
func (s *CheckService) Overdue(ctx context.Context) ([]tenancy.CheckAlert, error) {
	return s.checkRepo.FindOverdue(ctx, truncateToDay(s.now()))
}

// ListByContract lists the stored checks of one contract
func (s *CheckService) ListByContract(ctx context.Context, contractID int) ([]CheckResponse, error) {
	if _, err := s.contractRepo.FindByID(ctx, contractID); err != nil {
		return nil, err
	}

	checks, err := s.checkRepo.FindByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	responses := make([]CheckResponse, len(checks))
	for i := range checks {
		responses[i] = ToCheckResponse(&checks[i])
	}
	return responses, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
