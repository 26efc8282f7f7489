package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/brightdoor/realty-leads/pkg/logging"
)

// GatewayConfig controls the hosted LLM gateway client.
type GatewayConfig struct {
	BaseURL      string
	APIKey       string
	Model        string
	SystemPrompt string
	Timeout      time.Duration
}

// GatewayResponder replies via an OpenAI-compatible hosted LLM gateway.
type GatewayResponder struct {
	client       *resty.Client
	model        string
	systemPrompt string
	logger       *logging.Logger
}

type gatewayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type gatewayRequest struct {
	Model    string           `json:"model"`
	Messages []gatewayMessage `json:"messages"`
}

type gatewayResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewGatewayResponder creates a gateway responder, or an error when the
// gateway is not configured.
func NewGatewayResponder(cfg GatewayConfig, logger *logging.Logger) (*GatewayResponder, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("chat: gateway base URL is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("chat: gateway API key is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &GatewayResponder{
		client:       client,
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
		logger:       logger,
	}, nil
}

// Reply sends the session history plus the new user message to the gateway
// and returns the assistant's text.
func (g *GatewayResponder) Reply(ctx context.Context, history []Message, userText string) (string, error) {
	messages := make([]gatewayMessage, 0, len(history)+2)
	if g.systemPrompt != "" {
		messages = append(messages, gatewayMessage{Role: "system", Content: g.systemPrompt})
	}
	for _, m := range history {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		messages = append(messages, gatewayMessage{Role: m.Role, Content: m.Text})
	}
	messages = append(messages, gatewayMessage{Role: RoleUser, Content: userText})

	var out gatewayResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(gatewayRequest{Model: g.model, Messages: messages}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat: gateway request failed: %w", err)
	}
	if resp.IsError() {
		g.logger.Error("gateway returned error status", "status", resp.StatusCode())
		return "", fmt.Errorf("chat: gateway returned status %d", resp.StatusCode())
	}
	if out.Error != nil {
		return "", fmt.Errorf("chat: gateway error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat: gateway returned no choices")
	}

	reply := strings.TrimSpace(out.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("chat: gateway returned empty reply")
	}
	return reply, nil
}

var _ Responder = (*GatewayResponder)(nil)
