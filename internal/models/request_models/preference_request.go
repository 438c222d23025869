package request_models

// PreferenceUpdate carries a partial preference change. Nil fields are left
// untouched; present fields overwrite the stored value wholesale, arrays
// included. There is no deep merge.
type PreferenceUpdate struct {
	Interests           *[]string `json:"interests,omitempty"`
	Budget              *string   `json:"budget,omitempty"`
	Location            *string   `json:"location,omitempty"`
	Duration            *string   `json:"duration,omitempty"`
	Experience          *string   `json:"experience,omitempty"`
	PreviousSearches    *[]string `json:"previous_searches,omitempty"`
	ConversationContext *string   `json:"conversation_context,omitempty"`
}
