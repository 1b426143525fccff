// ABOUTME: SessionStore keeps capped per-session conversation history in memory
// ABOUTME: Oldest exchanges are evicted first; appends are serialized per store
package core

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harper/coursechat/internal/models"
)

// SessionStore holds the last maxHistory exchanges per session. Sessions are
// created lazily and live for the process lifetime.
type SessionStore struct {
	mu         sync.Mutex
	sessions   map[string][]models.Exchange
	maxHistory int
}

// NewSessionStore creates a store retaining maxHistory exchanges per session
func NewSessionStore(maxHistory int) *SessionStore {
	if maxHistory < 0 {
		maxHistory = 0
	}
	return &SessionStore{
		sessions:   make(map[string][]models.Exchange),
		maxHistory: maxHistory,
	}
}

// CreateSession returns a fresh session identifier
func (s *SessionStore) CreateSession() string {
	return "session_" + uuid.New().String()
}

// Append records a completed exchange, evicting the oldest entries beyond
// the retention cap. Appending to an unknown id creates the session.
func (s *SessionStore) Append(sessionID, query, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[sessionID], models.Exchange{
		Query:     query,
		Answer:    answer,
		Timestamp: time.Now(),
	})
	if len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}
	s.sessions[sessionID] = history
}

// History returns the retained exchanges for a session, oldest first.
// An unknown id yields an empty history.
func (s *SessionStore) History(sessionID string) []models.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.sessions[sessionID]
	out := make([]models.Exchange, len(history))
	copy(out, history)
	return out
}

// FormatHistory renders a session's history as prompt context, or "" when
// there is none.
func (s *SessionStore) FormatHistory(sessionID string) string {
	history := s.History(sessionID)
	if len(history) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, exchange := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "User: %s\nAssistant: %s", exchange.Query, exchange.Answer)
	}
	return sb.String()
}
