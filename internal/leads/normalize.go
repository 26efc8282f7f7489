package leads

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default sources assigned when the form does not say where it came from.
const (
	SourceWebsite     = "website"
	SourceContactForm = "contact-form"
	SourceCMARequest  = "cma-request"
)

// NormalizeLeadForm converts a generic lead form submission into the
// canonical Lead. The lead type is classified from the source.
func NormalizeLeadForm(req *LeadFormRequest) *Lead {
	source := req.Source
	if source == "" {
		source = SourceWebsite
	}
	leadType := ClassifySource(source)

	var lines []string
	if req.Message != "" {
		lines = append(lines, req.Message)
	}
	if req.PropertyType != "" {
		lines = append(lines, "Property Type: "+req.PropertyType)
	}
	if req.PriceRange != "" {
		lines = append(lines, "Budget: "+req.PriceRange)
	}
	if req.PreferredContact != "" {
		lines = append(lines, "Preferred Contact: "+req.PreferredContact)
	}
	if req.CheckIn != "" || req.CheckOut != "" {
		lines = append(lines, fmt.Sprintf("Dates: %s - %s",
			orFlexible(req.CheckIn), orFlexible(req.CheckOut)))
	}
	if req.Guests > 0 {
		lines = append(lines, fmt.Sprintf("Guests: %d", req.Guests))
	}

	first, last := SplitName(req.Name)
	return &Lead{
		ID:               uuid.NewString(),
		FirstName:        first,
		LastName:         last,
		Email:            req.Email,
		Phone:            req.Phone,
		Message:          strings.Join(lines, "\n"),
		Source:           source,
		Type:             leadType,
		Tags:             []string{source, string(leadType)},
		CreatedAt:        time.Now().UTC(),
		PropertyInterest: req.PropertyInterest,
		PropertyType:     req.PropertyType,
		PriceRange:       req.PriceRange,
		PreferredContact: req.PreferredContact,
	}
}

// NormalizeContactForm converts a contact page submission into the canonical
// Lead. Contact submissions are always general inquiries.
func NormalizeContactForm(req *ContactFormRequest) *Lead {
	source := req.Source
	if source == "" {
		source = SourceContactForm
	}

	first, last := SplitName(req.Name)
	return &Lead{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   fmt.Sprintf("Subject: %s\n\n%s", req.Subject, req.Message),
		Source:    source,
		Type:      TypeGeneral,
		Tags:      []string{source, string(TypeGeneral)},
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeCMARequest converts a CMA form submission into the canonical Lead.
// CMA requests are seller-side by definition, so the tags carry both the cma
// type and a seller tag plus the stated timeline.
func NormalizeCMARequest(req *CMARequest) *Lead {
	msg := fmt.Sprintf("CMA Request for: %s\nProperty Type: %s\nSelling Timeline: %s",
		req.Address, req.PropertyType, req.Timeline)
	if req.AdditionalInfo != "" {
		msg += "\nAdditional Info: " + req.AdditionalInfo
	}

	return &Lead{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   msg,
		Source:    SourceCMARequest,
		Type:      TypeCMA,
		Tags: []string{
			SourceCMARequest,
			string(TypeCMA),
			string(TypeSeller),
			"timeline:" + req.Timeline,
		},
		CreatedAt:    time.Now().UTC(),
		Address:      req.Address,
		PropertyType: req.PropertyType,
		Timeline:     req.Timeline,
	}
}

func orFlexible(s string) string {
	if s == "" {
		return "Flexible"
	}
	return s
}
