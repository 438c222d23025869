package mem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreatly/internal/models/response_models"
)

func newTestSession() *Session {
	return &Session{
		ID:     "s-1",
		UserID: "u-1",
		Intent: response_models.IntentBrowsing,
		Messages: []ChatMessage{
			{ID: "m-0", Role: RoleAssistant, Content: "welcome"},
		},
	}
}

func TestSession_TryBeginTurn(t *testing.T) {
	t.Run("appends the message and marks awaiting", func(t *testing.T) {
		s := newTestSession()

		ok := s.TryBeginTurn(ChatMessage{ID: "m-1", Role: RoleUser, Content: "hi"})

		assert.True(t, ok)
		assert.True(t, s.Awaiting)
		require.Len(t, s.Messages, 2)
		assert.Equal(t, "hi", s.Messages[1].Content)
	})

	t.Run("second begin is a no-op while awaiting", func(t *testing.T) {
		s := newTestSession()
		require.True(t, s.TryBeginTurn(ChatMessage{ID: "m-1", Role: RoleUser, Content: "first"}))

		ok := s.TryBeginTurn(ChatMessage{ID: "m-2", Role: RoleUser, Content: "second"})

		assert.False(t, ok)
		assert.Len(t, s.Messages, 2)
	})

	t.Run("only one of many concurrent begins wins", func(t *testing.T) {
		s := newTestSession()

		var wg sync.WaitGroup
		var mu sync.Mutex
		wins := 0
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if s.TryBeginTurn(ChatMessage{Role: RoleUser, Content: "race"}) {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, wins)
		assert.Len(t, s.Messages, 2)
	})
}

func TestSession_CompleteTurn(t *testing.T) {
	s := newTestSession()
	require.True(t, s.TryBeginTurn(ChatMessage{ID: "m-1", Role: RoleUser, Content: "hi"}))

	s.CompleteTurn(ChatMessage{ID: "m-2", Role: RoleAssistant, Content: "hello back"}, func(sess *Session) {
		sess.Intent = response_models.IntentComparing
		sess.QualityScore = 55
		sess.Recommendations = []response_models.RetreatRecommendation{{RetreatID: "r-1"}}
	})

	assert.False(t, s.Awaiting)
	require.Len(t, s.Messages, 3)
	assert.Equal(t, "hello back", s.Messages[2].Content)
	assert.Equal(t, response_models.IntentComparing, s.Intent)
	assert.Equal(t, 55, s.QualityScore)
	require.Len(t, s.Recommendations, 1)

	// The session can take another turn once complete.
	assert.True(t, s.TryBeginTurn(ChatMessage{ID: "m-3", Role: RoleUser, Content: "next"}))
}

func TestSession_AbortTurn(t *testing.T) {
	s := newTestSession()
	s.Recommendations = []response_models.RetreatRecommendation{{RetreatID: "r-1"}}
	s.QualityScore = 40
	require.True(t, s.TryBeginTurn(ChatMessage{ID: "m-1", Role: RoleUser, Content: "hi"}))

	s.AbortTurn(ChatMessage{ID: "m-2", Role: RoleAssistant, Content: "sorry"})

	assert.False(t, s.Awaiting)
	require.Len(t, s.Messages, 3)
	assert.Equal(t, "sorry", s.Messages[2].Content)

	// Prior state survives an abort untouched.
	assert.Equal(t, 40, s.QualityScore)
	require.Len(t, s.Recommendations, 1)
	assert.Equal(t, "r-1", s.Recommendations[0].RetreatID)
}

func TestSession_Snapshot(t *testing.T) {
	s := newTestSession()
	s.FollowUps = []string{"budget?"}

	view := s.Snapshot()

	view.Messages[0].Content = "mutated"
	view.FollowUps[0] = "mutated"

	assert.Equal(t, "welcome", s.Messages[0].Content)
	assert.Equal(t, "budget?", s.FollowUps[0])
	assert.Equal(t, s.ID, view.ID)
	assert.Equal(t, s.UserID, view.UserID)
}

func TestConversationSessions(t *testing.T) {
	store := NewConversationSessions()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	s := newTestSession()
	store.Put(s)

	got, ok := store.Get("s-1")
	require.True(t, ok)
	assert.Same(t, s, got)

	store.Delete("s-1")
	_, ok = store.Get("s-1")
	assert.False(t, ok)

	// Deleting a missing key is harmless.
	store.Delete("s-1")
}
