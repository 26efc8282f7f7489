package fanout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/brightdoor/realty-leads/internal/leads"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

// SheetsConfig holds configuration for the Google Sheets lead log.
type SheetsConfig struct {
	SpreadsheetID   string
	Range           string
	CredentialsFile string
}

// SheetLogger appends one row per lead to a Google Sheet.
type SheetLogger struct {
	svc           *sheets.Service
	spreadsheetID string
	writeRange    string
	logger        *logging.Logger
}

// NewSheetLogger creates a sheet logger, or nil when no spreadsheet is set.
func NewSheetLogger(ctx context.Context, cfg SheetsConfig, logger *logging.Logger) (*SheetLogger, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	writeRange := cfg.Range
	if writeRange == "" {
		writeRange = "Leads!A:K"
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("fanout: failed to create sheets service: %w", err)
	}

	return &SheetLogger{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		writeRange:    writeRange,
		logger:        logger,
	}, nil
}

// AppendLead appends the lead as a single row.
func (s *SheetLogger) AppendLead(ctx context.Context, lead *leads.Lead) error {
	row := LeadRow(lead)
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.writeRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("fanout: sheets append failed: %w", err)
	}

	s.logger.Info("lead appended to sheet", "lead_id", lead.ID, "spreadsheet_id", s.spreadsheetID)
	return nil
}

// LeadRow flattens a lead into the sheet's column order: timestamp, first
// name, last name, email, phone, type, source, tags, message, property
// interest, price range.
func LeadRow(lead *leads.Lead) []interface{} {
	return []interface{}{
		lead.CreatedAt.Format(time.RFC3339),
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.Phone,
		string(lead.Type),
		lead.Source,
		strings.Join(lead.Tags, ", "),
		lead.Message,
		lead.PropertyInterest,
		lead.PriceRange,
	}
}

var _ SheetAppender = (*SheetLogger)(nil)
