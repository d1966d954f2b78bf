package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/estatelink/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestMailer(t *testing.T, sendErr error) (*SMTPMailer, *capturedMail) {
	t.Helper()
	captured := &capturedMail{}
	mailer := NewSMTPMailer(config.SMTPConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "alerts@estatelink.example",
	}, zaptest.NewLogger(t))
	mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		captured.addr = addr
		captured.from = from
		captured.to = to
		captured.msg = string(msg)
		return sendErr
	}
	return mailer, captured
}

func TestSMTPMailer_NotifyContractExpiry(t *testing.T) {
	t.Run("copies the agent when on file", func(t *testing.T) {
		mailer, captured := newTestMailer(t, nil)

		err := mailer.NotifyContractExpiry(context.Background(), tenancy.ContractAlert{
			ContractID:      3,
			PropertyName:    "Marina Heights 1204",
			Location:        "Dubai Marina",
			ExpiryDate:      time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			DaysUntilExpiry: 44,
			TenantName:      "Omar Khalil",
			TenantEmail:     "omar@example.com",
			AgentName:       "Sara Haddad",
			AgentEmail:      "sara@agency.ae",
		})

		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com:587", captured.addr)
		assert.Equal(t, "alerts@estatelink.example", captured.from)
		assert.Equal(t, []string{"omar@example.com", "sara@agency.ae"}, captured.to)
		assert.Contains(t, captured.msg, "Subject: Contract expiry notice: Marina Heights 1204")
		assert.Contains(t, captured.msg, "expires on 2025-07-15, in 44 day(s)")
		assert.Contains(t, captured.msg, "Sara Haddad")
	})

	t.Run("sends to the tenant alone without an agent", func(t *testing.T) {
		mailer, captured := newTestMailer(t, nil)

		err := mailer.NotifyContractExpiry(context.Background(), tenancy.ContractAlert{
			PropertyName: "Palm Villa 7",
			TenantName:   "Layla Nasser",
			TenantEmail:  "layla@example.com",
			ExpiryDate:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"layla@example.com"}, captured.to)
	})
}

func TestSMTPMailer_NotifyCheckOverdue(t *testing.T) {
	mailer, captured := newTestMailer(t, nil)

	err := mailer.NotifyCheckOverdue(context.Background(), tenancy.CheckAlert{
		CheckNo:      "CHK00302",
		CheckDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(25000),
		Days:         9,
		PropertyName: "Marina Heights 1204",
		Location:     "Dubai Marina",
		TenantName:   "Omar Khalil",
		TenantEmail:  "omar@example.com",
		AgentName:    "Sara Haddad",
		AgentEmail:   "sara@agency.ae",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"omar@example.com", "sara@agency.ae"}, captured.to)
	assert.Contains(t, captured.msg, "Subject: Overdue payment: check CHK00302")
	assert.Contains(t, captured.msg, "AED 25000.00")
	assert.Contains(t, captured.msg, "was due on 2025-06-01 and is now 9 day(s) overdue")
	// Message body uses CRLF line endings
	assert.False(t, strings.Contains(strings.ReplaceAll(captured.msg, "\r\n", ""), "\n"))
}

func TestSMTPMailer_NotifyCheckDue(t *testing.T) {
	mailer, captured := newTestMailer(t, nil)

	err := mailer.NotifyCheckDue(context.Background(), tenancy.CheckAlert{
		CheckNo:      "CHK00403",
		CheckDate:    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(20000),
		Days:         14,
		PropertyName: "Palm Villa 7",
		Location:     "Palm Jumeirah",
		TenantName:   "Layla Nasser",
		TenantEmail:  "layla@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"layla@example.com"}, captured.to)
	assert.Contains(t, captured.msg, "Subject: Payment reminder: check CHK00403")
	assert.Contains(t, captured.msg, "is due on 2025-06-15, in 14 day(s)")
}

func TestSMTPMailer_DeliveryFailure(t *testing.T) {
	mailer, _ := newTestMailer(t, errors.New("smtp timeout"))

	err := mailer.NotifyCheckDue(context.Background(), tenancy.CheckAlert{
		CheckNo:     "CHK00101",
		TenantEmail: "omar@example.com",
	})

	assert.ErrorContains(t, err, "smtp timeout")
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	mailer, captured := newTestMailer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.NotifyCheckDue(ctx, tenancy.CheckAlert{TenantEmail: "omar@example.com"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, captured.msg)
}
