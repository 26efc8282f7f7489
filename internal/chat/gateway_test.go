package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGatewayResponder_RequiresConfig(t *testing.T) {
	_, err := NewGatewayResponder(GatewayConfig{APIKey: "key"}, nil)
	require.Error(t, err)

	_, err = NewGatewayResponder(GatewayConfig{BaseURL: "https://gateway.test"}, nil)
	require.Error(t, err)
}

func TestGatewayReply(t *testing.T) {
	var got gatewayRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Our newest listing is in Barton Hills.  "}}]}`))
	}))
	defer srv.Close()

	responder, err := NewGatewayResponder(GatewayConfig{
		BaseURL:      srv.URL,
		APIKey:       "gw-key",
		Model:        "gpt-4o-mini",
		SystemPrompt: "You are a helpful real estate assistant.",
	}, nil)
	require.NoError(t, err)

	history := []Message{
		{Role: RoleUser, Text: "Hi"},
		{Role: RoleAssistant, Text: "Hello! How can I help?"},
	}
	reply, err := responder.Reply(context.Background(), history, "Any new listings?")

	require.NoError(t, err)
	assert.Equal(t, "Our newest listing is in Barton Hills.", reply)
	assert.Equal(t, "Bearer gw-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, RoleUser, got.Messages[1].Role)
	assert.Equal(t, "Any new listings?", got.Messages[3].Content)
}

func TestGatewayReply_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	responder, err := NewGatewayResponder(GatewayConfig{BaseURL: srv.URL, APIKey: "gw-key"}, nil)
	require.NoError(t, err)

	_, err = responder.Reply(context.Background(), nil, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGatewayReply_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	responder, err := NewGatewayResponder(GatewayConfig{BaseURL: srv.URL, APIKey: "gw-key"}, nil)
	require.NoError(t, err)

	_, err = responder.Reply(context.Background(), nil, "hello")
	require.Error(t, err)
}
