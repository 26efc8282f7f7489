package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brightdoor/realty-leads/internal/chat"
	httpmiddleware "github.com/brightdoor/realty-leads/internal/http/middleware"
	"github.com/brightdoor/realty-leads/internal/leads"
	"github.com/brightdoor/realty-leads/internal/properties"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	ChatHandler        *chat.Handler
	PropertiesHandler  *properties.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	AdminJWTSecret     string
	FormRateLimit      float64
	FormRateBurst      int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		// Form endpoints are rate limited per IP; everything they do ends
		// in calls to external integrations.
		api.Group(func(forms chi.Router) {
			rate, burst := cfg.FormRateLimit, cfg.FormRateBurst
			if rate <= 0 {
				rate = 1
			}
			if burst <= 0 {
				burst = 5
			}
			forms.Use(httpmiddleware.RateLimit(rate, burst))
			forms.Post("/lead", cfg.LeadsHandler.SubmitLead)
			forms.Post("/contact", cfg.LeadsHandler.SubmitContact)
			forms.Post("/cma-request", cfg.LeadsHandler.SubmitCMA)
		})

		if cfg.PropertiesHandler != nil {
			api.Get("/properties", cfg.PropertiesHandler.List)
		}

		if cfg.ChatHandler != nil {
			api.Route("/chat", func(c chi.Router) {
				c.Get("/ws", cfg.ChatHandler.HandleWebSocket)
				c.Post("/message", cfg.ChatHandler.HandleMessage)
				c.Get("/history", cfg.ChatHandler.HandleHistory)
			})
		}
	})

	// Admin routes (protected by HMAC JWT)
	if cfg.AdminJWTSecret != "" {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminJWTSecret))
			admin.Get("/leads", cfg.LeadsHandler.ListRecent)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
