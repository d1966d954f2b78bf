package notification

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"text/template"

	apptenancy "github.com/estatelink/backend/internal/application/tenancy"
	"github.com/estatelink/backend/internal/domain/tenancy"
	"github.com/estatelink/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// sendFunc matches smtp.SendMail, injectable for tests
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers tenancy alerts by email over plain SMTP
type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
	send   sendFunc
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) *SMTPMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPMailer{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// NotifyContractExpiry sends an expiry notice to the tenant, with the agent
// in copy when an agent email is on file
func (m *SMTPMailer) NotifyContractExpiry(ctx context.Context, alert tenancy.ContractAlert) error {
	recipients := []string{alert.TenantEmail}
	if alert.AgentEmail != "" {
		recipients = append(recipients, alert.AgentEmail)
	}

	subject := fmt.Sprintf("Contract expiry notice: %s", alert.PropertyName)
	return m.deliver(ctx, recipients, subject, expiryTemplate, expiryEmailData{
		TenantName:   alert.TenantName,
		PropertyName: alert.PropertyName,
		Location:     alert.Location,
		ExpiryDate:   alert.ExpiryDate.Format(apptenancy.DateLayout),
		Days:         alert.DaysUntilExpiry,
		AgentName:    alert.AgentName,
	})
}

// NotifyCheckDue sends an upcoming payment reminder to the tenant, with
// the contract's agent in copy when an agent email is on file
func (m *SMTPMailer) NotifyCheckDue(ctx context.Context, alert tenancy.CheckAlert) error {
	subject := fmt.Sprintf("Payment reminder: check %s", alert.CheckNo)
	return m.deliver(ctx, checkRecipients(alert), subject, upcomingTemplate, m.checkData(alert))
}

// NotifyCheckOverdue sends an overdue payment notice to the tenant, with
// the contract's agent in copy when an agent email is on file
func (m *SMTPMailer) NotifyCheckOverdue(ctx context.Context, alert tenancy.CheckAlert) error {
	subject := fmt.Sprintf("Overdue payment: check %s", alert.CheckNo)
	return m.deliver(ctx, checkRecipients(alert), subject, overdueTemplate, m.checkData(alert))
}

func checkRecipients(alert tenancy.CheckAlert) []string {
	recipients := []string{alert.TenantEmail}
	if alert.AgentEmail != "" {
		recipients = append(recipients, alert.AgentEmail)
	}
	return recipients
}

func (m *SMTPMailer) checkData(alert tenancy.CheckAlert) checkEmailData {
	return checkEmailData{
		TenantName:   alert.TenantName,
		PropertyName: alert.PropertyName,
		Location:     alert.Location,
		CheckNo:      alert.CheckNo,
		CheckDate:    alert.CheckDate.Format(apptenancy.DateLayout),
		Amount:       alert.Amount.StringFixed(2),
		Days:         alert.Days,
	}
}

func (m *SMTPMailer) deliver(ctx context.Context, to []string, subject string, tmpl *template.Template, data interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email body: %w", err)
	}

	msg := buildMessage(m.cfg.From, to, subject, body.String())

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.From, to, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Info("Email sent",
		zap.String("subject", subject),
		zap.Strings("to", to))
	return nil
}

// buildMessage assembles an RFC 5322 message with CRLF line endings
func buildMessage(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// Ensure SMTPMailer implements the application notifier
var _ apptenancy.Notifier = (*SMTPMailer)(nil)
