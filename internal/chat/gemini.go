package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiResponder replies via Google's Gemini API.
type GeminiResponder struct {
	client       *genai.Client
	modelID      string
	systemPrompt string
}

// NewGeminiResponder creates a new Gemini responder.
func NewGeminiResponder(ctx context.Context, apiKey, modelID, systemPrompt string) (*GeminiResponder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chat: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("chat: failed to create gemini client: %w", err)
	}

	return &GeminiResponder{
		client:       client,
		modelID:      modelID,
		systemPrompt: systemPrompt,
	}, nil
}

// Reply sends the session history plus the new user message to Gemini.
func (g *GeminiResponder) Reply(ctx context.Context, history []Message, userText string) (string, error) {
	model := g.client.GenerativeModel(g.modelID)
	if strings.TrimSpace(g.systemPrompt) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(g.systemPrompt))
	}

	cs := model.StartChat()
	for _, m := range history {
		content := strings.TrimSpace(m.Text)
		if content == "" {
			continue
		}
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(userText))
	if err != nil {
		return "", fmt.Errorf("chat: gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("chat: gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", errors.New("chat: gemini returned empty reply")
	}
	return reply, nil
}

// Close releases the underlying client.
func (g *GeminiResponder) Close() error {
	return g.client.Close()
}

var _ Responder = (*GeminiResponder)(nil)
