package chat

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/brightdoor/realty-leads/internal/observability/metrics"
	"github.com/brightdoor/realty-leads/pkg/logging"
)

const fallbackReply = "Sorry, something went wrong. Please try again."

// Handler manages chat sessions for the site's widget.
type Handler struct {
	responder  Responder
	transcript *TranscriptStore
	metrics    *metrics.LeadMetrics
	logger     *logging.Logger
}

// InboundMessage is what the widget sends.
type InboundMessage struct {
	Type      string `json:"type"` // "message", "ping"
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// OutboundMessage is what we send to the widget.
type OutboundMessage struct {
	Type      string           `json:"type"` // "message", "typing", "history", "session", "error", "pong"
	Text      string           `json:"text,omitempty"`
	Role      string           `json:"role,omitempty"`
	SessionID string           `json:"session_id,omitempty"`
	Timestamp string           `json:"timestamp,omitempty"`
	Messages  []HistoryMessage `json:"messages,omitempty"`
}

// HistoryMessage is a simplified message for history responses.
type HistoryMessage struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NewHandler creates a chat handler.
func NewHandler(responder Responder, transcript *TranscriptStore, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if transcript == nil {
		transcript = NewTranscriptStore()
	}
	return &Handler{
		responder:  responder,
		transcript: transcript,
		metrics:    m,
		logger:     logger,
	}
}

// generateSessionID creates a random session identifier.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}

// HandleWebSocket upgrades to WebSocket and handles real-time messaging.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = generateSessionID()
	}

	_ = websocket.JSON.Send(conn, OutboundMessage{
		Type:      "session",
		SessionID: sessionID,
	})

	if msgs := h.transcript.List(sessionID); len(msgs) > 0 {
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "history", Messages: toHistory(msgs)})
	}

	h.logger.Info("chat: connection opened", "session_id", sessionID)

	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("chat: connection closed", "session_id", sessionID, "error", err)
			return
		}

		if msg.Type == "ping" {
			_ = websocket.JSON.Send(conn, OutboundMessage{Type: "pong"})
			continue
		}

		if msg.Type != "message" || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "typing"})

		reply, ok := h.respond(r.Context(), sessionID, msg.Text)
		out := OutboundMessage{
			Type:      "message",
			Role:      RoleAssistant,
			Text:      reply,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		if !ok {
			out.Type = "error"
		}
		_ = websocket.JSON.Send(conn, out)
	}
}

// respond records the user turn, asks the responder for a reply, and records
// the assistant turn. On responder failure it returns a canned apology.
func (h *Handler) respond(ctx context.Context, sessionID, text string) (string, bool) {
	history := h.transcript.List(sessionID)
	h.transcript.Append(sessionID, Message{Role: RoleUser, Text: text, Timestamp: time.Now().UTC()})

	reply, err := h.responder.Reply(ctx, history, text)
	if err != nil {
		h.logger.Error("chat: responder failed", "error", err, "session_id", sessionID)
		h.metrics.ObserveChat("failed")
		return fallbackReply, false
	}

	h.transcript.Append(sessionID, Message{Role: RoleAssistant, Text: reply, Timestamp: time.Now().UTC()})
	h.metrics.ObserveChat("replied")
	return reply, true
}

// HandleMessage is the HTTP fallback for sending messages.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = generateSessionID()
	}

	reply, ok := h.respond(r.Context(), req.SessionID, req.Text)
	status := http.StatusOK
	if !ok {
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"session_id": req.SessionID,
		"reply":      reply,
	})
}

// HandleHistory returns chat history for a session.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"messages": toHistory(h.transcript.List(sessionID)),
	})
}

func toHistory(msgs []Message) []HistoryMessage {
	history := make([]HistoryMessage, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, HistoryMessage{
			Role:      m.Role,
			Text:      m.Text,
			Timestamp: m.Timestamp.Format(time.RFC3339),
		})
	}
	return history
}
