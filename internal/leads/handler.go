package leads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/brightdoor/realty-leads/internal/observability/metrics"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

// Deliverer hands a normalized lead to the configured external destinations.
// Delivery is atomic from this layer's point of view: any error means the
// submission failed, even if some destinations accepted it.
type Deliverer interface {
	Deliver(ctx context.Context, lead *Lead) error
}

const (
	msgCheckForm       = "Please check the form and try again."
	msgDeliveryFailed  = "Sorry, something went wrong on our end. Please try again or contact us directly."
	msgLeadReceived    = "Thank you for your interest! We'll be in touch within 24 hours."
	msgContactReceived = "Thank you for your message! We'll get back to you as soon as possible."
	msgCMAReceived     = "Thank you! Your CMA request has been received. We'll send your market analysis within 2 business days."
)

// SubmitResponse is the uniform response shape of all form endpoints.
type SubmitResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// Handler handles HTTP requests for lead-capture forms
type Handler struct {
	deliverer Deliverer
	store     *RecentStore
	metrics   *metrics.LeadMetrics
	logger    *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(deliverer Deliverer, store *RecentStore, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		deliverer: deliverer,
		store:     store,
		metrics:   m,
		logger:    logger,
	}
}

// SubmitLead handles POST /api/lead requests from the generic lead form.
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var req LeadFormRequest
	if !h.decode(w, r, &req, "lead") {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.rejectInvalid(w, "lead", errs)
		return
	}
	h.deliver(w, r, "lead", NormalizeLeadForm(&req), msgLeadReceived)
}

// SubmitContact handles POST /api/contact requests from the contact page.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactFormRequest
	if !h.decode(w, r, &req, "contact") {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.rejectInvalid(w, "contact", errs)
		return
	}
	h.deliver(w, r, "contact", NormalizeContactForm(&req), msgContactReceived)
}

// SubmitCMA handles POST /api/cma-request requests.
func (h *Handler) SubmitCMA(w http.ResponseWriter, r *http.Request) {
	var req CMARequest
	if !h.decode(w, r, &req, "cma") {
		return
	}
	if errs := req.Validate(); errs != nil {
		h.rejectInvalid(w, "cma", errs)
		return
	}
	h.deliver(w, r, "cma", NormalizeCMARequest(&req), msgCMAReceived)
}

// ListRecentResponse is the response for the admin recent-leads listing.
type ListRecentResponse struct {
	Leads []*Lead `json:"leads"`
	Count int     `json:"count"`
}

// ListRecent handles GET /admin/leads requests.
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	resp := ListRecentResponse{Leads: []*Lead{}}
	if h.store != nil {
		resp.Leads = h.store.List()
	}
	resp.Count = len(resp.Leads)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, form string) bool {
	if err := decodePayload(r, dst); err != nil {
		h.logger.Error("failed to decode submission", "error", err, "form", form)
		h.metrics.ObserveLead(form, "malformed")
		writeJSON(w, http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return false
	}
	return true
}

func (h *Handler) rejectInvalid(w http.ResponseWriter, form string, errs FieldErrors) {
	h.metrics.ObserveLead(form, "invalid")
	writeJSON(w, http.StatusBadRequest, SubmitResponse{
		Success: false,
		Message: msgCheckForm,
		Errors:  errs,
	})
}

func (h *Handler) deliver(w http.ResponseWriter, r *http.Request, form string, lead *Lead, confirmation string) {
	if h.store != nil {
		h.store.Add(lead)
	}

	if err := h.deliverer.Deliver(r.Context(), lead); err != nil {
		// Log the cause server-side only; the client gets a generic apology.
		h.logger.Error("lead delivery failed", "error", err, "form", form, "lead_id", lead.ID)
		h.metrics.ObserveLead(form, "delivery_failed")
		writeJSON(w, http.StatusInternalServerError, SubmitResponse{
			Success: false,
			Message: msgDeliveryFailed,
		})
		return
	}

	h.logger.Info("lead delivered", "lead_id", lead.ID, "form", form, "type", lead.Type, "source", lead.Source)
	h.metrics.ObserveLead(form, "delivered")
	writeJSON(w, http.StatusOK, SubmitResponse{
		Success: true,
		Message: confirmation,
	})
}

// decodePayload reads a JSON or form-encoded request body into dst.
func decodePayload(r *http.Request, dst any) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return err
		}
		raw, err := json.Marshal(formToMap(r.PostForm))
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dst)
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func formToMap(form url.Values) map[string]any {
	m := make(map[string]any, len(form))
	for key, vals := range form {
		if len(vals) == 0 {
			continue
		}
		val := vals[0]
		// Numeric form fields arrive as strings.
		if key == "guests" {
			if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
				m[key] = n
				continue
			}
		}
		m[key] = val
	}
	return m
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
