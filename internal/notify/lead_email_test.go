package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brightdoor/realty-leads/internal/leads"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

type recordingSender struct {
	sent []EmailMessage
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg EmailMessage) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func sampleLead() *leads.Lead {
	return &leads.Lead{
		ID:        "lead-1",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "5125550147",
		Message:   "Subject: Hello\n\nInterested in listings.",
		Source:    "contact-form",
		Type:      leads.TypeGeneral,
		Tags:      []string{"contact-form", "general"},
	}
}

func TestNotifyLead_SendsToAllRecipients(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewLeadNotifier(sender, []string{"a@brightdoor.com", "b@brightdoor.com"}, "Brightdoor Realty", logging.Default())

	err := notifier.NotifyLead(context.Background(), sampleLead())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "a@brightdoor.com" {
		t.Errorf("unexpected recipient %q", sender.sent[0].To)
	}
	if !strings.Contains(sender.sent[0].Subject, "Jane Doe") {
		t.Errorf("expected lead name in subject, got %q", sender.sent[0].Subject)
	}
	if !strings.Contains(sender.sent[0].Body, "jane@example.com") {
		t.Error("expected lead email in body")
	}
	if !strings.Contains(sender.sent[0].HTML, "contact-form, general") {
		t.Error("expected tags in HTML body")
	}
}

func TestNotifyLead_SenderFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	notifier := NewLeadNotifier(sender, []string{"a@brightdoor.com"}, "", logging.Default())

	err := notifier.NotifyLead(context.Background(), sampleLead())

	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "1 lead alert(s) failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestNotifyLead_Unconfigured(t *testing.T) {
	notifier := NewLeadNotifier(nil, nil, "", logging.Default())

	if err := notifier.NotifyLead(context.Background(), sampleLead()); err != nil {
		t.Errorf("unconfigured notifier should be a no-op, got %v", err)
	}
}

func TestBuildLeadEmail_SubjectByType(t *testing.T) {
	lead := sampleLead()
	lead.Type = leads.TypeCMA

	msg := buildLeadEmail(lead, "Brightdoor Realty")

	if !strings.HasPrefix(msg.Subject, "New CMA Lead:") {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
}

func TestBuildLeadEmail_EscapesHTML(t *testing.T) {
	lead := sampleLead()
	lead.Message = "<script>alert(1)</script>"

	msg := buildLeadEmail(lead, "Brightdoor Realty")

	if strings.Contains(msg.HTML, "<script>") {
		t.Error("expected message to be HTML-escaped")
	}
}
