package tenancy

import (
	"context"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/estatelink/backend/internal/domain/tenancy"
	"go.uber.org/zap"
)

// DefaultExpiryDays is the lookahead window for contract expiry alerts
const DefaultExpiryDays = 100

// Notifier delivers tenancy alerts to the interested parties
type Notifier interface {
	// NotifyContractExpiry sends an expiry notice for one contract
	NotifyContractExpiry(ctx context.Context, alert tenancy.ContractAlert) error

	// NotifyCheckDue sends an upcoming payment notice for one check
	NotifyCheckDue(ctx context.Context, alert tenancy.CheckAlert) error

	// NotifyCheckOverdue sends an overdue payment notice for one check
	NotifyCheckOverdue(ctx context.Context, alert tenancy.CheckAlert) error
}

// AlertService handles expiry and payment alerting
type AlertService struct {
	contractRepo tenancy.ContractRepository
	checkRepo    tenancy.CheckRepository
	notifier     Notifier
	expiryDays   int
	upcomingDays int
	logger       *zap.Logger
	now          func() time.Time
}

// NewAlertService creates a new AlertService. The notifier may be nil when
// email delivery is not configured; Notify then fails with INVALID_STATE.
func NewAlertService(contractRepo tenancy.ContractRepository, checkRepo tenancy.CheckRepository, notifier Notifier, expiryDays, upcomingDays int, logger *zap.Logger) *AlertService {
	if expiryDays <= 0 {
		expiryDays = DefaultExpiryDays
	}
	if upcomingDays <= 0 {
		upcomingDays = DefaultUpcomingDays
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlertService{
		contractRepo: contractRepo,
		checkRepo:    checkRepo,
		notifier:     notifier,
		expiryDays:   expiryDays,
		upcomingDays: upcomingDays,
		logger:       logger,
		now:          time.Now,
	}
}

// Expiring lists contracts expiring within the given number of days from
// today. Already expired contracts are not included. A non-positive window
// falls back to the configured default.
func (s *AlertService) Expiring(ctx context.Context, days int) ([]tenancy.ContractAlert, error) {
	if days <= 0 {
		days = s.expiryDays
	}
	if days > 365 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Days must be between 1 and 365")
	}

	from := truncateToDay(s.now())
	return s.contractRepo.FindExpiring(ctx, from, from.AddDate(0, 0, days))
}

// Notify sends notification emails for expiring contracts, overdue checks
// and upcoming checks. Delivery failures are logged and skipped so one bad
// address does not block the rest of the run.
func (s *AlertService) Notify(ctx context.Context) (*NotifyResult, error) {
	if s.notifier == nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Email notifications are not configured")
	}

	today := truncateToDay(s.now())

	expiring, err := s.contractRepo.FindExpiring(ctx, today, today.AddDate(0, 0, s.expiryDays))
	if err != nil {
		return nil, err
	}
	overdue, err := s.checkRepo.FindOverdue(ctx, today)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.checkRepo.FindDueBetween(ctx, today, today.AddDate(0, 0, s.upcomingDays))
	if err != nil {
		return nil, err
	}

	result := &NotifyResult{
		ExpiringContracts: len(expiring),
		OverdueChecks:     len(overdue),
		UpcomingChecks:    len(upcoming),
	}

	for _, alert := range expiring {
		if err := s.notifier.NotifyContractExpiry(ctx, alert); err != nil {
			s.logger.Warn("Failed to send expiry notice",
				zap.Int("contract_id", alert.ContractID),
				zap.Error(err))
			continue
		}
		result.EmailsSent++
	}
	for _, alert := range overdue {
		if err := s.notifier.NotifyCheckOverdue(ctx, alert); err != nil {
			s.logger.Warn("Failed to send overdue notice",
				zap.String("check_no", alert.CheckNo),
				zap.Error(err))
			continue
		}
		result.EmailsSent++
	}
	for _, alert := range upcoming {
		if err := s.notifier.NotifyCheckDue(ctx, alert); err != nil {
			s.logger.Warn("Failed to send payment reminder",
				zap.String("check_no", alert.CheckNo),
				zap.Error(err))
			continue
		}
		result.EmailsSent++
	}

	return result, nil
}
