// Package properties serves the portfolio listing data the site's
// client-side filter and sort consume.
package properties

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/brightdoor/realty-leads/pkg/logging"
)

//go:embed portfolio.json
var portfolioJSON []byte

// Property is one portfolio listing.
type Property struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Price   int64   `json:"price"`
	Beds    int     `json:"beds"`
	Baths   float64 `json:"baths"`
	Sqft    int     `json:"sqft"`
	Type    string  `json:"type"`
	Status  string  `json:"status"` // active, pending, sold
	Image   string  `json:"image"`
}

// Load parses the embedded portfolio.
func Load() ([]Property, error) {
	var props []Property
	if err := json.Unmarshal(portfolioJSON, &props); err != nil {
		return nil, fmt.Errorf("properties: failed to parse portfolio: %w", err)
	}
	return props, nil
}

// Handler serves portfolio data.
type Handler struct {
	props  []Property
	logger *logging.Logger
}

// NewHandler creates a portfolio handler from the embedded data.
func NewHandler(logger *logging.Logger) (*Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	props, err := Load()
	if err != nil {
		return nil, err
	}
	return &Handler{props: props, logger: logger}, nil
}

// ListResponse is the portfolio listing payload.
type ListResponse struct {
	Properties []Property `json:"properties"`
	Count      int        `json:"count"`
}

// List handles GET /api/properties. Optional query params: status, type,
// and sort (price_asc or price_desc).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	propType := r.URL.Query().Get("type")

	out := make([]Property, 0, len(h.props))
	for _, p := range h.props {
		if status != "" && p.Status != status {
			continue
		}
		if propType != "" && p.Type != propType {
			continue
		}
		out = append(out, p)
	}

	switch r.URL.Query().Get("sort") {
	case "price_asc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price_desc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ListResponse{Properties: out, Count: len(out)})
}
