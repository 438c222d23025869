package response_models

type JournalEntryResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Prompt    string `json:"prompt,omitempty"`
	CreatedAt string `json:"created_at"`
}
