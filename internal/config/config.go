package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
	FormRateLimit      float64
	FormRateBurst      int
	AdminJWTSecret     string

	// Lead notification recipients (comma-separated in env)
	NotifyRecipients []string

	// Follow Up Boss CRM
	FollowUpBossAPIKey  string
	FollowUpBossBaseURL string
	FollowUpBossSystem  string

	// Google Sheets lead log
	SheetsSpreadsheetID   string
	SheetsRange           string
	SheetsCredentialsFile string

	// SendGrid Email Configuration
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// AWS SES fallback email
	EmailProvider      string
	SESFromEmail       string
	SESFromName        string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	// AI chat
	ChatProvider       string
	ChatGatewayBaseURL string
	ChatGatewayAPIKey  string
	ChatModel          string
	ChatSystemPrompt   string
	GeminiAPIKey       string
	GeminiModelID      string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
		FormRateLimit:      getEnvAsFloat("FORM_RATE_LIMIT", 1),
		FormRateBurst:      getEnvAsInt("FORM_RATE_BURST", 5),
		AdminJWTSecret:     getEnv("ADMIN_JWT_SECRET", ""),

		NotifyRecipients: getEnvAsSlice("NOTIFY_RECIPIENTS", nil),

		FollowUpBossAPIKey:  getEnv("FOLLOWUPBOSS_API_KEY", ""),
		FollowUpBossBaseURL: getEnv("FOLLOWUPBOSS_BASE_URL", ""),
		FollowUpBossSystem:  getEnv("FOLLOWUPBOSS_SYSTEM", "BrightdoorWebsite"),

		SheetsSpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsRange:           getEnv("SHEETS_RANGE", "Leads!A:K"),
		SheetsCredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Brightdoor Realty"),

		EmailProvider:      strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "auto"))),
		SESFromEmail:       getEnv("SES_FROM_EMAIL", ""),
		SESFromName:        getEnv("SES_FROM_NAME", "Brightdoor Realty"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),

		ChatProvider:       strings.ToLower(strings.TrimSpace(getEnv("CHAT_PROVIDER", "gateway"))),
		ChatGatewayBaseURL: getEnv("CHAT_GATEWAY_BASE_URL", ""),
		ChatGatewayAPIKey:  getEnv("CHAT_GATEWAY_API_KEY", ""),
		ChatModel:          getEnv("CHAT_MODEL", "gpt-4o-mini"),
		ChatSystemPrompt:   getEnv("CHAT_SYSTEM_PROMPT", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:      getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated environment variable, trimming blanks.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
