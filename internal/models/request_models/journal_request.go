package request_models

type SaveJournalEntryRequest struct {
	Content string `json:"content"`
	Prompt  string `json:"prompt,omitempty"`
}

type AnalyzeJournalRequest struct {
	Content  string `json:"content"`
	Location string `json:"location,omitempty"`
}
