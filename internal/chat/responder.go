package chat

import (
	"context"
	"sync"
	"time"
)

// Role values for chat messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a chat session.
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Responder produces the assistant's reply for a user message given the
// session history. Implementations can be swapped (hosted gateway, Gemini)
// without changing the handler.
type Responder interface {
	Reply(ctx context.Context, history []Message, userText string) (string, error)
}

const maxTranscriptMessages = 100

// TranscriptStore keeps per-session chat history in memory. Sessions are
// ephemeral; history is capped and lost on restart.
type TranscriptStore struct {
	mu       sync.RWMutex
	sessions map[string][]Message
}

// NewTranscriptStore creates an empty transcript store.
func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{sessions: make(map[string][]Message)}
}

// Append records a message in the session's history.
func (s *TranscriptStore) Append(sessionID string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := append(s.sessions[sessionID], msg)
	if len(msgs) > maxTranscriptMessages {
		msgs = msgs[len(msgs)-maxTranscriptMessages:]
	}
	s.sessions[sessionID] = msgs
}

// List returns the session's history, oldest first.
func (s *TranscriptStore) List(sessionID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.sessions[sessionID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
