package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/brightdoor/realty-leads/internal/leads"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

// LeadNotifier emails the team whenever a new lead comes in.
type LeadNotifier struct {
	sender     EmailSender
	recipients []string
	brand      string
	logger     *logging.Logger
}

// NewLeadNotifier creates a notifier that sends lead alerts to recipients.
func NewLeadNotifier(sender EmailSender, recipients []string, brand string, logger *logging.Logger) *LeadNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	if brand == "" {
		brand = "Brightdoor Realty"
	}
	return &LeadNotifier{
		sender:     sender,
		recipients: recipients,
		brand:      brand,
		logger:     logger,
	}
}

// NotifyLead sends the new-lead alert to every configured recipient.
func (n *LeadNotifier) NotifyLead(ctx context.Context, lead *leads.Lead) error {
	if n.sender == nil || len(n.recipients) == 0 {
		n.logger.Debug("notify: email not configured, skipping lead alert")
		return nil
	}

	msg := buildLeadEmail(lead, n.brand)

	var errs []error
	for _, recipient := range n.recipients {
		msg.To = recipient
		if err := n.sender.Send(ctx, msg); err != nil {
			n.logger.Error("notify: failed to send lead alert", "error", err, "to", recipient)
			errs = append(errs, err)
		} else {
			n.logger.Info("notify: lead alert sent", "to", recipient, "lead_id", lead.ID)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notify: %d lead alert(s) failed", len(errs))
	}
	return nil
}

func buildLeadEmail(lead *leads.Lead, brand string) EmailMessage {
	subject := fmt.Sprintf("New %s Lead: %s", leadTypeLabel(lead.Type), lead.FullName())

	body := fmt.Sprintf(`A new lead just came in from the website.

Name: %s
Email: %s
Phone: %s
Source: %s
Type: %s
Tags: %s

%s

%s`, lead.FullName(), lead.Email, orDash(lead.Phone), lead.Source, lead.Type,
		strings.Join(lead.Tags, ", "), lead.Message, brand)

	htmlRows := []string{
		htmlRow("Name", lead.FullName()),
		htmlRow("Email", lead.Email),
		htmlRow("Phone", orDash(lead.Phone)),
		htmlRow("Source", lead.Source),
		htmlRow("Type", string(lead.Type)),
		htmlRow("Tags", strings.Join(lead.Tags, ", ")),
	}
	htmlBody := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2 style="color: #1d4ed8;">New Lead</h2>
<table style="border-collapse: collapse; margin: 20px 0;">
%s
</table>
<p style="white-space: pre-line;">%s</p>
<p style="color: #6b7280; font-size: 12px; margin-top: 20px;">%s</p>
</div>`, strings.Join(htmlRows, "\n"), html.EscapeString(lead.Message), html.EscapeString(brand))

	return EmailMessage{
		Subject: subject,
		Body:    body,
		HTML:    htmlBody,
	}
}

func htmlRow(label, value string) string {
	return fmt.Sprintf(`  <tr><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>%s:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td></tr>`,
		label, html.EscapeString(value))
}

func leadTypeLabel(t leads.LeadType) string {
	switch t {
	case leads.TypeBuyer:
		return "Buyer"
	case leads.TypeSeller:
		return "Seller"
	case leads.TypeCMA:
		return "CMA"
	default:
		return "General"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
