package fanout

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightdoor/realty-leads/internal/leads"
	"github.com/brightdoor/realty-leads/internal/observability/metrics"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

// CRMClient creates a contact in the CRM from a lead.
type CRMClient interface {
	CreateContact(ctx context.Context, lead *leads.Lead) error
}

// SheetAppender appends a lead row to the spreadsheet log.
type SheetAppender interface {
	AppendLead(ctx context.Context, lead *leads.Lead) error
}

// Notifier alerts the team about a new lead.
type Notifier interface {
	NotifyLead(ctx context.Context, lead *leads.Lead) error
}

// Service delivers each lead to every configured destination. Destinations
// left nil are skipped. Delivery is sequential and errors are collected, so
// one failing destination does not stop the others, but any failure makes
// the whole delivery fail from the caller's point of view.
type Service struct {
	crm      CRMClient
	sheet    SheetAppender
	notifier Notifier
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
}

// NewService creates a fan-out service.
func NewService(crm CRMClient, sheet SheetAppender, notifier Notifier, m *metrics.LeadMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		crm:      crm,
		sheet:    sheet,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Deliver sends the lead to all configured destinations.
func (s *Service) Deliver(ctx context.Context, lead *leads.Lead) error {
	var errs []error

	if s.crm != nil {
		if err := s.crm.CreateContact(ctx, lead); err != nil {
			s.logger.Error("fanout: CRM delivery failed", "error", err, "lead_id", lead.ID)
			s.metrics.ObserveDelivery("crm", "failed")
			errs = append(errs, fmt.Errorf("crm: %w", err))
		} else {
			s.metrics.ObserveDelivery("crm", "delivered")
		}
	}

	if s.sheet != nil {
		if err := s.sheet.AppendLead(ctx, lead); err != nil {
			s.logger.Error("fanout: sheet append failed", "error", err, "lead_id", lead.ID)
			s.metrics.ObserveDelivery("sheet", "failed")
			errs = append(errs, fmt.Errorf("sheet: %w", err))
		} else {
			s.metrics.ObserveDelivery("sheet", "delivered")
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyLead(ctx, lead); err != nil {
			s.logger.Error("fanout: email notification failed", "error", err, "lead_id", lead.ID)
			s.metrics.ObserveDelivery("email", "failed")
			errs = append(errs, fmt.Errorf("email: %w", err))
		} else {
			s.metrics.ObserveDelivery("email", "delivered")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("fanout: %d delivery(ies) failed: %w", len(errs), errors.Join(errs...))
	}
	return nil
}

var _ leads.Deliverer = (*Service)(nil)
