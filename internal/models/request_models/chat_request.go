package request_models

type StartConversationRequest struct {
	// Optional: the retreat the user was looking at when the chat opened.
	RetreatContext string `json:"retreat_context,omitempty"`
	Location       string `json:"location,omitempty"`
}

type SendMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}
