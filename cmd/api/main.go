package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brightdoor/realty-leads/internal/api/router"
	"github.com/brightdoor/realty-leads/internal/chat"
	appconfig "github.com/brightdoor/realty-leads/internal/config"
	"github.com/brightdoor/realty-leads/internal/fanout"
	"github.com/brightdoor/realty-leads/internal/leads"
	"github.com/brightdoor/realty-leads/internal/notify"
	"github.com/brightdoor/realty-leads/internal/observability/metrics"
	"github.com/brightdoor/realty-leads/internal/properties"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

func main() {
	// Load .env in development; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting realty-leads API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()
	leadMetrics := metrics.NewLeadMetrics(nil)

	emailSender := buildEmailSender(ctx, cfg, logger)
	notifier := notify.NewLeadNotifier(emailSender, cfg.NotifyRecipients, cfg.SendGridFromName, logger)

	crmClient := fanout.NewFollowUpBossClient(fanout.FollowUpBossConfig{
		APIKey:  cfg.FollowUpBossAPIKey,
		BaseURL: cfg.FollowUpBossBaseURL,
		System:  cfg.FollowUpBossSystem,
	}, logger)

	sheetLogger, err := fanout.NewSheetLogger(ctx, fanout.SheetsConfig{
		SpreadsheetID:   cfg.SheetsSpreadsheetID,
		Range:           cfg.SheetsRange,
		CredentialsFile: cfg.SheetsCredentialsFile,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize sheets client", "error", err)
		os.Exit(1)
	}

	var fanoutService *fanout.Service
	if crmClient != nil {
		fanoutService = fanout.NewService(crmClient, sheetOrNil(sheetLogger), notifier, leadMetrics, logger)
	} else {
		fanoutService = fanout.NewService(nil, sheetOrNil(sheetLogger), notifier, leadMetrics, logger)
		logger.Warn("CRM not configured, leads will not reach Follow Up Boss")
	}

	recentStore := leads.NewRecentStore(200)
	leadsHandler := leads.NewHandler(fanoutService, recentStore, leadMetrics, logger)

	propertiesHandler, err := properties.NewHandler(logger)
	if err != nil {
		logger.Error("failed to load portfolio data", "error", err)
		os.Exit(1)
	}

	var chatHandler *chat.Handler
	if responder := buildChatResponder(ctx, cfg, logger); responder != nil {
		chatHandler = chat.NewHandler(responder, chat.NewTranscriptStore(), leadMetrics, logger)
	} else {
		logger.Warn("chat responder not configured, chat endpoints disabled")
	}

	routerCfg := &router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		ChatHandler:        chatHandler,
		PropertiesHandler:  propertiesHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminJWTSecret:     cfg.AdminJWTSecret,
		FormRateLimit:      cfg.FormRateLimit,
		FormRateBurst:      cfg.FormRateBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildEmailSender picks the email provider: sendgrid, ses, or a logging
// stub when neither is configured.
func buildEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	provider := cfg.EmailProvider

	if provider == "sendgrid" || (provider == "auto" && cfg.SendGridAPIKey != "") {
		if sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); sender != nil {
			return sender
		}
	}

	if provider == "ses" || (provider == "auto" && cfg.SESFromEmail != "") {
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		if sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger); sender != nil {
			return sender
		}
	}

	logger.Warn("no email provider configured, lead alerts will only be logged")
	return notify.NewStubEmailSender(logger)
}

// buildChatResponder picks the chat backend from config, or nil when chat is
// disabled.
func buildChatResponder(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) chat.Responder {
	switch cfg.ChatProvider {
	case "gemini":
		responder, err := chat.NewGeminiResponder(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID, cfg.ChatSystemPrompt)
		if err != nil {
			logger.Error("failed to create gemini responder", "error", err)
			return nil
		}
		return responder
	case "gateway":
		if strings.TrimSpace(cfg.ChatGatewayBaseURL) == "" {
			return nil
		}
		responder, err := chat.NewGatewayResponder(chat.GatewayConfig{
			BaseURL:      cfg.ChatGatewayBaseURL,
			APIKey:       cfg.ChatGatewayAPIKey,
			Model:        cfg.ChatModel,
			SystemPrompt: cfg.ChatSystemPrompt,
		}, logger)
		if err != nil {
			logger.Error("failed to create gateway responder", "error", err)
			return nil
		}
		return responder
	default:
		return nil
	}
}

// loadAWSConfig centralizes AWS SDK initialization for the SES sender.
func loadAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	loaders := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if strings.TrimSpace(cfg.AWSAccessKeyID) != "" && strings.TrimSpace(cfg.AWSSecretAccessKey) != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, loaders...)
}

func sheetOrNil(s *fanout.SheetLogger) fanout.SheetAppender {
	if s == nil {
		return nil
	}
	return s
}
