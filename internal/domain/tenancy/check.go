package tenancy

import (
	"fmt"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Check represents a single scheduled rent payment for a contract.
// The check number uniquely identifies (contract, sequence) and is the
// concurrency safeguard for repeated generation runs.
type Check struct {
	shared.BaseEntity
	ContractID int
	CheckNo    string
	CheckDate  time.Time
	Amount     decimal.Decimal
}

// CheckNumber formats a check number as CHK{contract:03}{sequence:02}.
// Contract IDs above 999 widen the field rather than truncate.
func CheckNumber(contractID, sequence int) string {
	return fmt.Sprintf("CHK%03d%02d", contractID, sequence)
}

// NewCheck creates a check from a scheduled entry
func NewCheck(contractID int, sc ScheduledCheck) *Check {
	return &Check{
		BaseEntity: shared.NewBaseEntity(),
		ContractID: contractID,
		CheckNo:    sc.CheckNo,
		CheckDate:  sc.Date,
		Amount:     sc.Amount,
	}
}

// IsOverdue reports whether the check date is strictly before the given day
func (c *Check) IsOverdue(asOf time.Time) bool {
	return c.CheckDate.Before(truncateToDay(asOf))
}

// DaysOverdue returns how many whole days the check is past due.
// Zero when the check is not overdue.
func (c *Check) DaysOverdue(asOf time.Time) int {
	if !c.IsOverdue(asOf) {
		return 0
	}
	return int(truncateToDay(asOf).Sub(c.CheckDate).Hours() / 24)
}
