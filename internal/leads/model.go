package leads

import (
	"strings"
	"time"
)

// LeadType classifies what a prospect is looking for.
type LeadType string

const (
	TypeBuyer   LeadType = "buyer"
	TypeSeller  LeadType = "seller"
	TypeGeneral LeadType = "general"
	TypeCMA     LeadType = "cma"
)

// Lead is the canonical, normalized form submission handed to the fan-out
// service. It is built per request and not persisted beyond the recent-leads
// buffer.
type Lead struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source"`
	Type      LeadType  `json:"type"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`

	PropertyInterest string `json:"property_interest,omitempty"`
	PropertyType     string `json:"property_type,omitempty"`
	PriceRange       string `json:"price_range,omitempty"`
	PreferredContact string `json:"preferred_contact,omitempty"`
	Address          string `json:"address,omitempty"`
	Timeline         string `json:"timeline,omitempty"`
}

// FullName joins the split name back together for display contexts.
func (l *Lead) FullName() string {
	if l.LastName == "" {
		return l.FirstName
	}
	return l.FirstName + " " + l.LastName
}

// SplitName splits a full name on runs of whitespace. The first token becomes
// the first name; any remaining tokens are joined with single spaces into the
// last name. A single-token name yields an empty last name.
func SplitName(full string) (first, last string) {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}

// ClassifySource derives the lead type from the originating page or form.
// Buyer signals win over seller signals, so a source matching both (e.g.
// "sell-and-buy") classifies as buyer.
func ClassifySource(source string) LeadType {
	if strings.Contains(source, "property-alerts") ||
		strings.Contains(source, "portfolio") ||
		strings.Contains(source, "buy") {
		return TypeBuyer
	}
	if strings.Contains(source, "sell") {
		return TypeSeller
	}
	return TypeGeneral
}
