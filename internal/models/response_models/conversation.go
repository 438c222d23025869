package response_models

// Intent labels the orchestrator may assign to a session.
const (
	IntentBrowsing      = "browsing"
	IntentComparing     = "comparing"
	IntentReadyToBook   = "ready_to_book"
	IntentUrgent        = "urgent"
	IntentPlanningAhead = "planning_ahead"
)

type ConversationMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

type ConversationResponse struct {
	SessionID       string                  `json:"session_id"`
	Messages        []ConversationMessage   `json:"messages"`
	Recommendations []RetreatRecommendation `json:"recommendations,omitempty"`
	FollowUps       []string                `json:"follow_up_questions,omitempty"`
	Intent          string                  `json:"intent"`
	QualityScore    int                     `json:"quality_score"` // 0-100, conversation quality, not a match score
	Awaiting        bool                    `json:"awaiting"`
}

type UserPreferences struct {
	Interests           []string `json:"interests"`
	Budget              string   `json:"budget,omitempty"`
	Location            string   `json:"location,omitempty"`
	Duration            string   `json:"duration,omitempty"`
	Experience          string   `json:"experience,omitempty"`
	PreviousSearches    []string `json:"previous_searches,omitempty"`
	ConversationContext string   `json:"conversation_context,omitempty"`
}
