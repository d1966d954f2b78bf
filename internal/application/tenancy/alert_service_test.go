package tenancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/estatelink/backend/internal/domain/shared"
	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAlertService_Expiring(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("defaults to the configured window", func(t *testing.T) {
		contractRepo := new(MockContractRepository)
		checkRepo := new(MockCheckRepository)
		service := NewAlertService(contractRepo, checkRepo, nil, 100, 30, zaptest.NewLogger(t))
		service.now = func() time.Time { return fixedNow }

		contractRepo.On("FindExpiring", ctx, today, today.AddDate(0, 0, 100)).
			Return([]tenancy.ContractAlert{{ContractID: 3, DaysUntilExpiry: 44}}, nil)

		alerts, err := service.Expiring(ctx, 0)

		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, 44, alerts[0].DaysUntilExpiry)
		contractRepo.AssertExpectations(t)
	})

	t.Run("rejects windows above a year", func(t *testing.T) {
		contractRepo := new(MockContractRepository)
		checkRepo := new(MockCheckRepository)
		service := NewAlertService(contractRepo, checkRepo, nil, 100, 30, zaptest.NewLogger(t))

		_, err := service.Expiring(ctx, 366)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestAlertService_Notify(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("fails when no notifier is configured", func(t *testing.T) {
		contractRepo := new(MockContractRepository)
		checkRepo := new(MockCheckRepository)
		service := NewAlertService(contractRepo, checkRepo, nil, 100, 30, zaptest.NewLogger(t))

		result, err := service.Notify(ctx)

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("sends one email per alert and skips failures", func(t *testing.T) {
		contractRepo := new(MockContractRepository)
		checkRepo := new(MockCheckRepository)
		notifier := new(MockNotifier)
		service := NewAlertService(contractRepo, checkRepo, notifier, 100, 30, zaptest.NewLogger(t))
		service.now = func() time.Time { return fixedNow }

		expiring := tenancy.ContractAlert{ContractID: 3, TenantEmail: "omar@example.com"}
		overdue := tenancy.CheckAlert{CheckNo: "CHK00302", Days: 9}
		upcoming := tenancy.CheckAlert{CheckNo: "CHK00403", Days: 14}

		contractRepo.On("FindExpiring", ctx, today, today.AddDate(0, 0, 100)).
			Return([]tenancy.ContractAlert{expiring}, nil)
		checkRepo.On("FindOverdue", ctx, today).
			Return([]tenancy.CheckAlert{overdue}, nil)
		checkRepo.On("FindDueBetween", ctx, today, today.AddDate(0, 0, 30)).
			Return([]tenancy.CheckAlert{upcoming}, nil)

		notifier.On("NotifyContractExpiry", ctx, expiring).Return(nil)
		notifier.On("NotifyCheckOverdue", ctx, overdue).Return(errors.New("smtp timeout"))
		notifier.On("NotifyCheckDue", ctx, upcoming).Return(nil)

		result, err := service.Notify(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.ExpiringContracts)
		assert.Equal(t, 1, result.OverdueChecks)
		assert.Equal(t, 1, result.UpcomingChecks)
		assert.Equal(t, 2, result.EmailsSent)
		notifier.AssertExpectations(t)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		contractRepo := new(MockContractRepository)
		checkRepo := new(MockCheckRepository)
		notifier := new(MockNotifier)
		service := NewAlertService(contractRepo, checkRepo, notifier, 100, 30, zaptest.NewLogger(t))
		service.now = func() time.Time { return fixedNow }

		contractRepo.On("FindExpiring", ctx, mock.Anything, mock.Anything).
			Return([]tenancy.ContractAlert(nil), errors.New("connection refused"))

		result, err := service.Notify(ctx)

		assert.Nil(t, result)
		assert.EqualError(t, err, "connection refused")
		notifier.AssertNotCalled(t, "NotifyContractExpiry", mock.Anything, mock.Anything)
	})
}
