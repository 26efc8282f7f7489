package leads

import "testing"

func TestLeadFormRequest_Validate(t *testing.T) {
	valid := LeadFormRequest{Name: "Jane Doe", Email: "jane@example.com"}
	if errs := valid.Validate(); errs != nil {
		t.Fatalf("expected valid request, got %v", errs)
	}

	tests := []struct {
		name      string
		req       LeadFormRequest
		wantField string
	}{
		{"missing name", LeadFormRequest{Email: "a@b.com"}, "name"},
		{"short name", LeadFormRequest{Name: "J", Email: "a@b.com"}, "name"},
		{"missing email", LeadFormRequest{Name: "Jane Doe"}, "email"},
		{"invalid email", LeadFormRequest{Name: "Jane Doe", Email: "not-an-email"}, "email"},
		{"bad phone", LeadFormRequest{Name: "Jane Doe", Email: "a@b.com", Phone: "call me!"}, "phone"},
		{"bad preferred contact", LeadFormRequest{Name: "Jane Doe", Email: "a@b.com", PreferredContact: "carrier-pigeon"}, "preferredContact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if errs == nil {
				t.Fatal("expected validation errors")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestLeadFormRequest_Validate_PhoneFormats(t *testing.T) {
	for _, phone := range []string{"+1 (512) 555-0147", "512 555 0147", "5125550147"} {
		req := LeadFormRequest{Name: "Jane Doe", Email: "a@b.com", Phone: phone}
		if errs := req.Validate(); errs != nil {
			t.Errorf("expected phone %q to validate, got %v", phone, errs)
		}
	}
}

func TestLeadFormRequest_Validate_MessageTooLong(t *testing.T) {
	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'x'
	}
	req := LeadFormRequest{Name: "Jane Doe", Email: "a@b.com", Message: string(long)}
	errs := req.Validate()
	if errs == nil {
		t.Fatal("expected validation error for long message")
	}
	if _, ok := errs["message"]; !ok {
		t.Errorf("expected error on message, got %v", errs)
	}
}

func TestContactFormRequest_Validate(t *testing.T) {
	valid := ContactFormRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "A question about listings.",
	}
	if errs := valid.Validate(); errs != nil {
		t.Fatalf("expected valid request, got %v", errs)
	}

	missing := ContactFormRequest{Name: "Jane Doe", Email: "jane@example.com"}
	errs := missing.Validate()
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["subject"]; !ok {
		t.Errorf("expected error on subject, got %v", errs)
	}
	if _, ok := errs["message"]; !ok {
		t.Errorf("expected error on message, got %v", errs)
	}
}

func TestCMARequest_Validate(t *testing.T) {
	valid := CMARequest{
		FirstName:    "Dana",
		LastName:     "Owner",
		Email:        "dana@example.com",
		Address:      "123 Main St",
		PropertyType: "single-family",
		Timeline:     "3-6 months",
	}
	if errs := valid.Validate(); errs != nil {
		t.Fatalf("expected valid request, got %v", errs)
	}

	bad := valid
	bad.PropertyType = "castle"
	errs := bad.Validate()
	if errs == nil {
		t.Fatal("expected validation error for unknown property type")
	}
	if _, ok := errs["propertyType"]; !ok {
		t.Errorf("expected error on propertyType, got %v", errs)
	}

	bad = valid
	bad.Timeline = "whenever"
	errs = bad.Validate()
	if errs == nil {
		t.Fatal("expected validation error for unknown timeline")
	}
	if _, ok := errs["timeline"]; !ok {
		t.Errorf("expected error on timeline, got %v", errs)
	}

	bad = valid
	bad.Address = "abc"
	if errs := bad.Validate(); errs == nil {
		t.Error("expected validation error for short address")
	}
}
