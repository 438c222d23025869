// pkg/mem/conversation_sessions.go
package mem

import (
	"sync"

	"retreatly/internal/models/response_models"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// Session is one user's conversation with the retreat finder. Message order
// is append-only; a session alternates between idle and awaiting-response.
type Session struct {
	mu sync.Mutex

	ID             string
	UserID         string
	RetreatContext string
	Location       string
	Messages       []ChatMessage
	Awaiting       bool

	Intent          string
	QualityScore    int
	Recommendations []response_models.RetreatRecommendation
	FollowUps       []string

	CreatedAt int64
}

// TryBeginTurn appends the user message and marks the session as awaiting a
// response. Returns false without mutating anything when a turn is already
// in flight, so a second send before the first resolves is a no-op.
func (s *Session) TryBeginTurn(msg ChatMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Awaiting {
		return false
	}
	s.Messages = append(s.Messages, msg)
	s.Awaiting = true
	return true
}

// CompleteTurn appends the assistant message, applies the response-derived
// updates, and returns the session to idle.
func (s *Session) CompleteTurn(assistant ChatMessage, update func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Messages = append(s.Messages, assistant)
	if update != nil {
		update(s)
	}
	s.Awaiting = false
}

// AbortTurn appends the apology message and returns to idle. Intent,
// recommendations and follow-ups are left exactly as they were.
func (s *Session) AbortTurn(apology ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Messages = append(s.Messages, apology)
	s.Awaiting = false
}

// SessionView is a copy safe to hand to renderers.
type SessionView struct {
	ID              string
	UserID          string
	Awaiting        bool
	Intent          string
	QualityScore    int
	Messages        []ChatMessage
	Recommendations []response_models.RetreatRecommendation
	FollowUps       []string
}

func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		ID:           s.ID,
		UserID:       s.UserID,
		Awaiting:     s.Awaiting,
		Intent:       s.Intent,
		QualityScore: s.QualityScore,
	}
	view.Messages = append(view.Messages, s.Messages...)
	view.Recommendations = append(view.Recommendations, s.Recommendations...)
	view.FollowUps = append(view.FollowUps, s.FollowUps...)
	return view
}

type ConversationStore interface {
	Get(sessionID string) (*Session, bool)
	Put(session *Session)
	Delete(sessionID string)
}

type ConversationSessions struct {
	mu   sync.RWMutex
	data map[string]*Session
}

func NewConversationSessions() *ConversationSessions {
	return &ConversationSessions{
		data: make(map[string]*Session),
	}
}

func (c *ConversationSessions) Get(sessionID string) (*Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.data[sessionID]
	return s, ok
}

func (c *ConversationSessions) Put(session *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[session.ID] = session
}

func (c *ConversationSessions) Delete(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, sessionID)
}
