package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLeadForm_Minimal(t *testing.T) {
	lead := NormalizeLeadForm(&LeadFormRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})

	assert.Equal(t, "Jane", lead.FirstName)
	assert.Equal(t, "Doe", lead.LastName)
	assert.Equal(t, "jane@example.com", lead.Email)
	assert.Equal(t, SourceWebsite, lead.Source)
	assert.Equal(t, TypeGeneral, lead.Type)
	assert.Contains(t, lead.Tags, "website")
	assert.Contains(t, lead.Tags, "general")
	assert.Empty(t, lead.Message)
	assert.NotEmpty(t, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestNormalizeLeadForm_ClassifiesFromSource(t *testing.T) {
	lead := NormalizeLeadForm(&LeadFormRequest{
		Name:   "Sam Seller",
		Email:  "sam@example.com",
		Source: "sell-your-home",
	})

	assert.Equal(t, TypeSeller, lead.Type)
	assert.Contains(t, lead.Tags, "sell-your-home")
	assert.Contains(t, lead.Tags, "seller")
}

func TestNormalizeLeadForm_MessageAssembly(t *testing.T) {
	lead := NormalizeLeadForm(&LeadFormRequest{
		Name:             "Bob Buyer",
		Email:            "bob@example.com",
		Message:          "Looking for a vacation rental.",
		PropertyType:     "condo",
		PriceRange:       "$500k-$750k",
		PreferredContact: "email",
		CheckIn:          "2026-09-12",
		Guests:           4,
	})

	want := "Looking for a vacation rental.\n" +
		"Property Type: condo\n" +
		"Budget: $500k-$750k\n" +
		"Preferred Contact: email\n" +
		"Dates: 2026-09-12 - Flexible\n" +
		"Guests: 4"
	assert.Equal(t, want, lead.Message)
}

func TestNormalizeLeadForm_AbsentFieldsContributeNothing(t *testing.T) {
	lead := NormalizeLeadForm(&LeadFormRequest{
		Name:       "Bob Buyer",
		Email:      "bob@example.com",
		PriceRange: "$1M+",
	})

	assert.Equal(t, "Budget: $1M+", lead.Message)
}

func TestNormalizeContactForm(t *testing.T) {
	lead := NormalizeContactForm(&ContactFormRequest{
		Name:    "Carol Client",
		Email:   "carol@example.com",
		Subject: "Open house question",
		Message: "Is the Saturday open house still on?",
	})

	assert.Equal(t, "Subject: Open house question\n\nIs the Saturday open house still on?", lead.Message)
	assert.Equal(t, TypeGeneral, lead.Type)
	assert.Equal(t, SourceContactForm, lead.Source)
	assert.Contains(t, lead.Tags, "contact-form")
}

func TestNormalizeCMARequest(t *testing.T) {
	lead := NormalizeCMARequest(&CMARequest{
		FirstName:    "Dana",
		LastName:     "Owner",
		Email:        "dana@example.com",
		Address:      "123 Main St",
		PropertyType: "single-family",
		Timeline:     "3-6 months",
	})

	require.Equal(t, "CMA Request for: 123 Main St\nProperty Type: single-family\nSelling Timeline: 3-6 months", lead.Message)
	assert.Equal(t, TypeCMA, lead.Type)
	assert.Contains(t, lead.Tags, "cma-request")
	assert.Contains(t, lead.Tags, "seller")
	assert.Contains(t, lead.Tags, "timeline:3-6 months")
	assert.Equal(t, "123 Main St", lead.Address)
}

func TestNormalizeCMARequest_AdditionalInfo(t *testing.T) {
	lead := NormalizeCMARequest(&CMARequest{
		FirstName:      "Dana",
		LastName:       "Owner",
		Email:          "dana@example.com",
		Address:        "123 Main St",
		PropertyType:   "condo",
		Timeline:       "asap",
		AdditionalInfo: "Recently renovated kitchen.",
	})

	assert.Contains(t, lead.Message, "\nAdditional Info: Recently renovated kitchen.")
}
