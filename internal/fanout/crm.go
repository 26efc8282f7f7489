package fanout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/brightdoor/realty-leads/internal/leads"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

const defaultFollowUpBossBaseURL = "https://api.followupboss.com"

// FollowUpBossConfig controls how the CRM client behaves.
type FollowUpBossConfig struct {
	APIKey  string
	BaseURL string
	System  string
	Timeout time.Duration
}

// FollowUpBossClient creates contacts via the Follow Up Boss events API.
type FollowUpBossClient struct {
	client *resty.Client
	system string
	logger *logging.Logger
}

type fubPerson struct {
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName,omitempty"`
	Emails    []fubValue   `json:"emails"`
	Phones    []fubValue   `json:"phones,omitempty"`
	Tags      []string     `json:"tags,omitempty"`
	Addresses []fubAddress `json:"addresses,omitempty"`
}

type fubValue struct {
	Value string `json:"value"`
}

type fubAddress struct {
	Street string `json:"street"`
	Type   string `json:"type"`
}

type fubEvent struct {
	Source  string    `json:"source"`
	System  string    `json:"system"`
	Type    string    `json:"type"`
	Message string    `json:"message,omitempty"`
	Person  fubPerson `json:"person"`
}

// NewFollowUpBossClient creates a CRM client, or nil when no API key is set.
func NewFollowUpBossClient(cfg FollowUpBossConfig, logger *logging.Logger) *FollowUpBossClient {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultFollowUpBossBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// Follow Up Boss authenticates with the API key as the basic auth user.
	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(cfg.APIKey, "").
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &FollowUpBossClient{
		client: client,
		system: cfg.System,
		logger: logger,
	}
}

// CreateContact registers the lead as a Follow Up Boss event, which creates
// or updates the person record and attaches the inquiry.
func (c *FollowUpBossClient) CreateContact(ctx context.Context, lead *leads.Lead) error {
	event := fubEvent{
		Source:  lead.Source,
		System:  c.system,
		Type:    eventType(lead.Type),
		Message: lead.Message,
		Person: fubPerson{
			FirstName: lead.FirstName,
			LastName:  lead.LastName,
			Emails:    []fubValue{{Value: lead.Email}},
			Tags:      lead.Tags,
		},
	}
	if lead.Phone != "" {
		event.Person.Phones = []fubValue{{Value: lead.Phone}}
	}
	if lead.Address != "" {
		event.Person.Addresses = []fubAddress{{Street: lead.Address, Type: "home"}}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(event).
		Post("/v1/events")
	if err != nil {
		return fmt.Errorf("fanout: follow up boss request failed: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("follow up boss returned error status", "status", resp.StatusCode(), "lead_id", lead.ID)
		return fmt.Errorf("fanout: follow up boss returned status %d", resp.StatusCode())
	}

	c.logger.Info("lead sent to follow up boss", "lead_id", lead.ID, "status", resp.StatusCode())
	return nil
}

func eventType(t leads.LeadType) string {
	switch t {
	case leads.TypeBuyer:
		return "Property Inquiry"
	case leads.TypeSeller, leads.TypeCMA:
		return "Seller Inquiry"
	default:
		return "General Inquiry"
	}
}

var _ CRMClient = (*FollowUpBossClient)(nil)
