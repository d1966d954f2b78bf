package notification

import "text/template"

// Plain-text email bodies. Dates arrive preformatted as YYYY-MM-DD.
var (
	expiryTemplate = template.Must(template.New("expiry").Parse(`Dear {{.TenantName}},

Your tenancy contract for {{.PropertyName}} ({{.Location}}) expires on {{.ExpiryDate}}, in {{.Days}} day(s).

Please contact your agent{{if .AgentName}} {{.AgentName}}{{end}} to arrange the renewal.

EstateLink Property Management
`))

	overdueTemplate = template.Must(template.New("overdue").Parse(`Dear {{.TenantName}},

Payment check {{.CheckNo}} of AED {{.Amount}} for {{.PropertyName}} ({{.Location}}) was due on {{.CheckDate}} and is now {{.Days}} day(s) overdue.

Please settle the payment as soon as possible.

EstateLink Property Management
`))

	upcomingTemplate = template.Must(template.New("upcoming").Parse(`Dear {{.TenantName}},

This is a reminder that payment check {{.CheckNo}} of AED {{.Amount}} for {{.PropertyName}} ({{.Location}}) is due on {{.CheckDate}}, in {{.Days}} day(s).

EstateLink Property Management
`))
)

// checkEmailData feeds the overdue and upcoming templates
type checkEmailData struct {
	TenantName   string
	PropertyName string
	Location     string
	CheckNo      string
	CheckDate    string
	Amount       string
	Days         int
}

// expiryEmailData feeds the expiry template
type expiryEmailData struct {
	TenantName   string
	PropertyName string
	Location     string
	ExpiryDate   string
	Days         int
	AgentName    string
}
