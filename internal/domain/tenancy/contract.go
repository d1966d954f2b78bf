package tenancy

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how rent checks are settled
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCheque       PaymentMethod = "Cheque"
	PaymentMethodCash         PaymentMethod = "Cash"
)

// Contract limits
const (
	MinChecksPerContract = 1
	MaxChecksPerContract = 12
)

// Contract represents a tenancy agreement for a property. It is the
// aggregate root for check generation and expiry alerting.
type Contract struct {
	shared.BaseEntity
	TenantID      int
	PropertyName  string
	Location      string
	StartDate     time.Time
	ExpiryDate    time.Time
	AnnualRent    decimal.Decimal
	NumChecks     int
	PaymentMethod PaymentMethod
	AgentName     string
	AgentEmail    string

	// Tenant contact details, filled in by read queries that join the
	// tenants table. Not part of the contract's own persisted state.
	TenantName  string
	TenantEmail string
	TenantPhone string
}

// NewContract creates a new contract with required fields
func NewContract(tenantID int, propertyName, location string, startDate, expiryDate time.Time, annualRent decimal.Decimal, numChecks int, paymentMethod PaymentMethod, agentName, agentEmail string) (*Contract, error) {
	if tenantID <= 0 {
		return nil, shared.NewDomainError("INVALID_TENANT", "Contract requires a valid tenant")
	}
	if strings.TrimSpace(propertyName) == "" {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property name cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location cannot be empty")
	}
	if !expiryDate.After(startDate) {
		return nil, shared.NewDomainError("INVALID_DATES", "Expiry date must be after start date")
	}
	if annualRent.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_RENT", "Annual rent must be positive")
	}
	if numChecks < MinChecksPerContract || numChecks > MaxChecksPerContract {
		return nil, shared.NewDomainError("INVALID_NUM_CHECKS", fmt.Sprintf("Number of checks must be between %d and %d", MinChecksPerContract, MaxChecksPerContract))
	}
	if err := validatePaymentMethod(paymentMethod); err != nil {
		return nil, err
	}
	if agentEmail != "" {
		if err := ValidateEmail(agentEmail); err != nil {
			return nil, err
		}
	}

	return &Contract{
		BaseEntity:    shared.NewBaseEntity(),
		TenantID:      tenantID,
		PropertyName:  propertyName,
		Location:      location,
		StartDate:     truncateToDay(startDate),
		ExpiryDate:    truncateToDay(expiryDate),
		AnnualRent:    annualRent,
		NumChecks:     numChecks,
		PaymentMethod: paymentMethod,
		AgentName:     agentName,
		AgentEmail:    strings.ToLower(agentEmail),
	}, nil
}

// IsExpired reports whether the contract has expired as of the given day
func (c *Contract) IsExpired(asOf time.Time) bool {
	return c.ExpiryDate.Before(truncateToDay(asOf))
}

// DaysUntilExpiry returns the whole number of days from asOf to the expiry date.
// Negative when already expired.
func (c *Contract) DaysUntilExpiry(asOf time.Time) int {
	return int(c.ExpiryDate.Sub(truncateToDay(asOf)).Hours() / 24)
}

// BuildSchedule computes the full check schedule for the contract.
//
// The contract term is split into NumChecks intervals of equal real-valued
// length; check i is dated StartDate plus floor(interval*i) days. The
// fractional offsets are floored per check rather than accumulated, so late
// checks drift earlier than a naive even split. Amounts are the annual rent
// divided evenly and rounded to 2 decimal places, with the final check
// absorbing the rounding remainder so the schedule sums to the rent exactly.
func (c *Contract) BuildSchedule() []ScheduledCheck {
	totalDays := int(c.ExpiryDate.Sub(c.StartDate).Hours() / 24)
	interval := float64(totalDays) / float64(c.NumChecks)

	per := c.AnnualRent.DivRound(decimal.NewFromInt(int64(c.NumChecks)), 2)
	last := c.AnnualRent.Sub(per.Mul(decimal.NewFromInt(int64(c.NumChecks - 1))))

	schedule := make([]ScheduledCheck, 0, c.NumChecks)
	for i := 0; i < c.NumChecks; i++ {
		offset := int(math.Floor(interval * float64(i)))
		amount := per
		if i == c.NumChecks-1 {
			amount = last
		}
		schedule = append(schedule, ScheduledCheck{
			Sequence: i + 1,
			CheckNo:  CheckNumber(c.ID, i+1),
			Date:     c.StartDate.AddDate(0, 0, offset),
			Amount:   amount,
		})
	}
	return schedule
}

// ScheduledCheck is one entry of a contract's computed payment schedule
type ScheduledCheck struct {
	Sequence int
	CheckNo  string
	Date     time.Time
	Amount   decimal.Decimal
}

func validatePaymentMethod(m PaymentMethod) error {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCheque, PaymentMethodCash:
		return nil
	default:
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be 'Bank Transfer', 'Cheque' or 'Cash'")
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
