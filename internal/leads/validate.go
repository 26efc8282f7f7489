package leads

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a submitted field name to a human-readable problem.
type FieldErrors map[string]string

var phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the JSON field name the client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// LeadFormRequest is the raw payload of the generic lead form.
type LeadFormRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"omitempty,phone"`
	Message          string `json:"message" validate:"omitempty,max=1000"`
	Source           string `json:"source"`
	PropertyInterest string `json:"propertyInterest" validate:"omitempty,max=200"`
	PropertyType     string `json:"propertyType" validate:"omitempty,max=100"`
	PriceRange       string `json:"priceRange" validate:"omitempty,max=100"`
	PreferredContact string `json:"preferredContact" validate:"omitempty,oneof=email phone text"`
	CheckIn          string `json:"checkIn" validate:"omitempty,max=50"`
	CheckOut         string `json:"checkOut" validate:"omitempty,max=50"`
	Guests           int    `json:"guests" validate:"omitempty,min=1,max=50"`
}

// ContactFormRequest is the raw payload of the contact page form.
type ContactFormRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Subject string `json:"subject" validate:"required,min=2,max=200"`
	Message string `json:"message" validate:"required,max=1000"`
	Source  string `json:"source"`
}

// CMARequest is the raw payload of the comparative market analysis form.
type CMARequest struct {
	FirstName      string `json:"firstName" validate:"required,min=2,max=100"`
	LastName       string `json:"lastName" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,phone"`
	Address        string `json:"address" validate:"required,min=5,max=200"`
	PropertyType   string `json:"propertyType" validate:"required,oneof=single-family condo townhouse multi-family land other"`
	Timeline       string `json:"timeline" validate:"required,oneof=asap '1-3 months' '3-6 months' '6-12 months' just-curious"`
	AdditionalInfo string `json:"additionalInfo" validate:"omitempty,max=1000"`
}

// Validate checks the generic lead form payload.
func (r *LeadFormRequest) Validate() FieldErrors { return checkStruct(r) }

// Validate checks the contact form payload.
func (r *ContactFormRequest) Validate() FieldErrors { return checkStruct(r) }

// Validate checks the CMA request payload.
func (r *CMARequest) Validate() FieldErrors { return checkStruct(r) }

func checkStruct(s any) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"_": "invalid submission"}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "phone":
		return "May only contain digits, spaces, and - + ( )"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), "'", "")
	default:
		return "Invalid value"
	}
}
