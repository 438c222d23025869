package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"retreatly/internal/models/request_models"
	"retreatly/internal/models/response_models"
	mem "retreatly/pkg/memcache"
	"retreatly/pkg/utils"
)

const (
	welcomeMessage = "Hi! I'm your retreat finder. Tell me what you're looking for — a quiet weekend, something active outdoors, or help working through stress — and I'll suggest retreats that fit."

	apologyMessage = "Sorry, I'm having trouble responding right now. Please try again in a moment."
)

type ConversationService interface {
	StartSession(ctx context.Context, userId uuid.UUID, req request_models.StartConversationRequest) (*response_models.ConversationResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req request_models.SendMessageRequest) (*response_models.ConversationResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, sessionId string) (*response_models.ConversationResponse, error)
	ResetSession(ctx context.Context, userId uuid.UUID, sessionId string) (*response_models.ConversationResponse, error)
}

type conversationService struct {
	store   mem.ConversationStore
	ai      utils.AIClientInterface
	prefSvc PreferenceService
}

func NewConversationService(store mem.ConversationStore, ai utils.AIClientInterface, prefSvc PreferenceService) ConversationService {
	return &conversationService{
		store:   store,
		ai:      ai,
		prefSvc: prefSvc,
	}
}

// aiTurn is the schema the model is instructed to reply with. Unknown intent
// values and out-of-range scores are normalized after parsing, never trusted.
type aiTurn struct {
	Reply             string                                  `json:"reply"`
	Preferences       *request_models.PreferenceUpdate        `json:"preferences,omitempty"`
	Recommendations   []response_models.RetreatRecommendation `json:"recommendations,omitempty"`
	FollowUpQuestions []string                                `json:"follow_up_questions,omitempty"`
	Intent            string                                  `json:"intent"`
	QualityScore      int                                     `json:"quality_score"`
}

// StartSession creates a fresh idle session seeded with a single welcome
// message from the assistant.
func (c *conversationService) StartSession(ctx context.Context, userId uuid.UUID, req request_models.StartConversationRequest) (*response_models.ConversationResponse, error) {
	session := c.newSession(userId, req.RetreatContext, req.Location)
	c.store.Put(session)
	return viewToResponse(session.Snapshot()), nil
}

// SendMessage runs one turn of the conversation. While a turn is in flight
// the session refuses further sends; a second message before the reply lands
// returns the current state unchanged.
func (c *conversationService) SendMessage(ctx context.Context, userId uuid.UUID, req request_models.SendMessageRequest) (*response_models.ConversationResponse, error) {
	session, ok := c.store.Get(req.SessionID)
	if !ok || session.UserID != userId.String() {
		return nil, utils.ErrConversationNotFound
	}

	trimmed := strings.TrimSpace(req.Message)
	if trimmed == "" {
		return nil, utils.ErrInvalidInput
	}

	userMsg := mem.ChatMessage{
		ID:        uuid.NewString(),
		Role:      mem.RoleUser,
		Content:   trimmed,
		Timestamp: utils.NowUnixSeconds(),
	}

	if !session.TryBeginTurn(userMsg) {
		return viewToResponse(session.Snapshot()), nil
	}

	prefs, err := c.prefSvc.GetPreferences(ctx, userId)
	if err != nil {
		log.Printf("loading preferences for conversation: %v", err)
		prefs = &response_models.UserPreferences{}
	}

	prompt := c.buildTurnPrompt(session.Snapshot(), session.RetreatContext, session.Location, prefs)

	raw, err := c.ai.GenerateConversationTurn(ctx, prompt)
	if err != nil {
		log.Printf("AI turn failed for session %s: %v", session.ID, err)
		session.AbortTurn(c.apology())
		return viewToResponse(session.Snapshot()), nil
	}

	var turn aiTurn
	if err := json.Unmarshal([]byte(raw), &turn); err != nil || strings.TrimSpace(turn.Reply) == "" {
		log.Printf("AI turn unparseable for session %s: %v", session.ID, err)
		session.AbortTurn(c.apology())
		return viewToResponse(session.Snapshot()), nil
	}

	normalizeTurn(&turn)

	if turn.Preferences != nil {
		if _, err := c.prefSvc.UpdatePreferences(ctx, userId, *turn.Preferences); err != nil {
			// Preference persistence is best-effort; the reply still stands.
			log.Printf("merging conversation preferences: %v", err)
		}
	}

	assistantMsg := mem.ChatMessage{
		ID:        uuid.NewString(),
		Role:      mem.RoleAssistant,
		Content:   turn.Reply,
		Timestamp: utils.NowUnixSeconds(),
	}

	session.CompleteTurn(assistantMsg, func(s *mem.Session) {
		s.Intent = turn.Intent
		s.QualityScore = turn.QualityScore
		// Each turn replaces what is shown; a reply without recommendations
		// or follow-ups clears them.
		s.Recommendations = turn.Recommendations
		s.FollowUps = turn.FollowUpQuestions
	})

	return viewToResponse(session.Snapshot()), nil
}

func (c *conversationService) GetSession(ctx context.Context, userId uuid.UUID, sessionId string) (*response_models.ConversationResponse, error) {
	session, ok := c.store.Get(sessionId)
	if !ok || session.UserID != userId.String() {
		return nil, utils.ErrConversationNotFound
	}
	return viewToResponse(session.Snapshot()), nil
}

// ResetSession throws the session away and starts over: one welcome message,
// idle state, no recommendations carried across.
func (c *conversationService) ResetSession(ctx context.Context, userId uuid.UUID, sessionId string) (*response_models.ConversationResponse, error) {
	old, ok := c.store.Get(sessionId)
	if !ok || old.UserID != userId.String() {
		return nil, utils.ErrConversationNotFound
	}
	c.store.Delete(sessionId)

	session := c.newSession(userId, old.RetreatContext, old.Location)
	c.store.Put(session)
	return viewToResponse(session.Snapshot()), nil
}

func (c *conversationService) newSession(userId uuid.UUID, retreatContext, location string) *mem.Session {
	welcome := welcomeMessage
	if retreatContext != "" {
		welcome = fmt.Sprintf("Hi! I see you're looking at %s. Want to know more about it, or should I suggest similar retreats?", retreatContext)
	}
	if location == "" {
		location = DefaultCity
	}

	now := utils.NowUnixSeconds()
	return &mem.Session{
		ID:             uuid.NewString(),
		UserID:         userId.String(),
		RetreatContext: retreatContext,
		Location:       location,
		Intent:         response_models.IntentBrowsing,
		CreatedAt:      now,
		Messages: []mem.ChatMessage{
			{
				ID:        uuid.NewString(),
				Role:      mem.RoleAssistant,
				Content:   welcome,
				Timestamp: now,
			},
		},
	}
}

func (c *conversationService) apology() mem.ChatMessage {
	return mem.ChatMessage{
		ID:        uuid.NewString(),
		Role:      mem.RoleAssistant,
		Content:   apologyMessage,
		Timestamp: utils.NowUnixSeconds(),
	}
}

// buildTurnPrompt assembles the full model prompt: role instructions, the
// response schema, known preferences, the location hint, optional retreat
// context, and the message history including the turn just begun.
func (c *conversationService) buildTurnPrompt(view mem.SessionView, retreatContext, location string, prefs *response_models.UserPreferences) string {
	var b strings.Builder

	b.WriteString("You are a retreat booking assistant for a wellness retreat marketplace. ")
	b.WriteString("Help the user find and book retreats. Be warm and concise.\n\n")

	b.WriteString("Return ONLY valid JSON in this exact format:\n")
	b.WriteString(`{
  "reply": "your response to the user",
  "preferences": {"interests": [], "budget": "", "location": "", "duration": "", "experience": ""},
  "recommendations": [{"retreat_id": "", "title": "", "match_score": 0.0, "reason": ""}],
  "follow_up_questions": ["..."],
  "intent": "browsing|comparing|ready_to_book|urgent|planning_ahead",
  "quality_score": 0
}`)
	b.WriteString("\n\nEvery reply replaces what the user currently sees: send the complete recommendations and follow_up_questions lists each time, or leave them out to clear them. ")
	b.WriteString("Omit preferences when nothing changed. ")
	b.WriteString("match_score is between 0 and 1. quality_score rates the conversation so far, 0 to 100.\n\n")

	if location != "" {
		b.WriteString(fmt.Sprintf("The user is near: %s\n", location))
	}

	if retreatContext != "" {
		b.WriteString(fmt.Sprintf("The user opened this chat from the retreat: %s\n", retreatContext))
	}

	if prefs != nil {
		if len(prefs.Interests) > 0 {
			b.WriteString(fmt.Sprintf("Known interests: %s\n", strings.Join(prefs.Interests, ", ")))
		}
		if prefs.Budget != "" {
			b.WriteString(fmt.Sprintf("Budget: %s\n", prefs.Budget))
		}
		if prefs.Location != "" {
			b.WriteString(fmt.Sprintf("Preferred location: %s\n", prefs.Location))
		}
		if prefs.Duration != "" {
			b.WriteString(fmt.Sprintf("Preferred duration: %s\n", prefs.Duration))
		}
		if prefs.Experience != "" {
			b.WriteString(fmt.Sprintf("Experience level: %s\n", prefs.Experience))
		}
	}

	b.WriteString("\nConversation so far:\n")
	for _, msg := range view.Messages {
		b.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
	}

	return b.String()
}

// normalizeTurn clamps model output into the ranges the rest of the system
// relies on.
func normalizeTurn(turn *aiTurn) {
	switch turn.Intent {
	case response_models.IntentBrowsing,
		response_models.IntentComparing,
		response_models.IntentReadyToBook,
		response_models.IntentUrgent,
		response_models.IntentPlanningAhead:
	default:
		turn.Intent = response_models.IntentBrowsing
	}

	if turn.QualityScore < 0 {
		turn.QualityScore = 0
	}
	if turn.QualityScore > 100 {
		turn.QualityScore = 100
	}

	for i := range turn.Recommendations {
		if turn.Recommendations[i].MatchScore < 0 {
			turn.Recommendations[i].MatchScore = 0
		}
		if turn.Recommendations[i].MatchScore > 1 {
			turn.Recommendations[i].MatchScore = 1
		}
	}
}

func viewToResponse(view mem.SessionView) *response_models.ConversationResponse {
	messages := make([]response_models.ConversationMessage, 0, len(view.Messages))
	for _, msg := range view.Messages {
		messages = append(messages, response_models.ConversationMessage{
			ID:        msg.ID,
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	return &response_models.ConversationResponse{
		SessionID:       view.ID,
		Messages:        messages,
		Recommendations: view.Recommendations,
		FollowUps:       view.FollowUps,
		Intent:          view.Intent,
		QualityScore:    view.QualityScore,
		Awaiting:        view.Awaiting,
	}
}
