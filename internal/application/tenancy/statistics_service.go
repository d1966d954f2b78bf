package tenancy

import (
	"context"
	"time"

	"github.com/estatelink/backend/internal/domain/tenancy"
)

// StatisticsService aggregates portfolio-wide counts
type StatisticsService struct {
	tenantRepo   tenancy.TenantRepository
	contractRepo tenancy.ContractRepository
	checkRepo    tenancy.CheckRepository
	expiryDays   int
	upcomingDays int
	now          func() time.Time
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(tenantRepo tenancy.TenantRepository, contractRepo tenancy.ContractRepository, checkRepo tenancy.CheckRepository, expiryDays, upcomingDays int) *StatisticsService {
	if expiryDays <= 0 {
		expiryDays = DefaultExpiryDays
	}
	if upcomingDays <= 0 {
		upcomingDays = DefaultUpcomingDays
	}
	return &StatisticsService{
		tenantRepo:   tenantRepo,
		contractRepo: contractRepo,
		checkRepo:    checkRepo,
		expiryDays:   expiryDays,
		upcomingDays: upcomingDays,
		now:          time.Now,
	}
}

// Get computes the portfolio statistics as of today
func (s *StatisticsService) Get(ctx context.Context) (*tenancy.Statistics, error) {
	today := truncateToDay(s.now())

	stats := &tenancy.Statistics{}
	var err error

	if stats.TotalTenants, err = s.tenantRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalContracts, err = s.contractRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveContracts, err = s.contractRepo.CountActive(ctx, today); err != nil {
		return nil, err
	}
	if stats.ExpiredContracts, err = s.contractRepo.CountExpired(ctx, today); err != nil {
		return nil, err
	}
	if stats.TotalChecks, err = s.checkRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.OverdueChecks, err = s.checkRepo.CountOverdue(ctx, today); err != nil {
		return nil, err
	}
	if stats.UpcomingChecks, err = s.checkRepo.CountDueBetween(ctx, today, today.AddDate(0, 0, s.upcomingDays)); err != nil {
		return nil, err
	}

	expiring, err := s.contractRepo.FindExpiring(ctx, today, today.AddDate(0, 0, s.expiryDays))
	if err != nil {
		return nil, err
	}
	stats.ExpiringContracts = int64(len(expiring))

	return stats, nil
}
